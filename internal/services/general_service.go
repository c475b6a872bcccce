package services

import (
	"fmt"

	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
)

// GeneralService aggregates cross-entity data for the overview page.
type GeneralService struct {
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	assignmentRepo repository.AssignmentRepository
	messageRepo    repository.MessageRepository
}

// NewGeneralService creates a new GeneralService.
func NewGeneralService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	assignmentRepo repository.AssignmentRepository,
	messageRepo repository.MessageRepository,
) *GeneralService {
	return &GeneralService{
		userRepo:       userRepo,
		postRepo:       postRepo,
		assignmentRepo: assignmentRepo,
		messageRepo:    messageRepo,
	}
}

// Overview holds entity counts plus the full post list; the handler picks
// the recent highlights out of the posts.
type Overview struct {
	UserCount        int64
	PostCount        int64
	MessageCount     int64
	AssignmentCounts map[models.AssignmentStatus]int64
	Posts            []models.OperationPost
}

// GetOverview collects counts across all entities and the post list.
func (s *GeneralService) GetOverview() (*Overview, error) {
	userCount, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	postCount, err := s.postRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	messageCount, err := s.messageRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	assignmentCounts, err := s.assignmentRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return &Overview{
		UserCount:        userCount,
		PostCount:        postCount,
		MessageCount:     messageCount,
		AssignmentCounts: assignmentCounts,
		Posts:            posts,
	}, nil
}

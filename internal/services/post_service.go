package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
)

var (
	ErrPostDescriptionRequired = errors.New("description is required")
	ErrPostHappenedAtRequired  = errors.New("happened_at is required")
	ErrInvalidPostType         = errors.New("unknown post type")
)

// PostService handles the operation post feed.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePostInput represents input for creating an operation post.
type CreatePostInput struct {
	Title                 string
	Description           string
	Type                  models.PostType
	AdditionalInformation string
	HappenedAt            time.Time
}

// ListPosts returns every post with its author resolved, in stored order.
func (s *PostService) ListPosts() ([]models.OperationPost, error) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// CreatePost persists a new post authored by the given user. WrittenAt is
// stamped here and never changes afterwards.
func (s *PostService) CreatePost(authorID uint64, input CreatePostInput) (*models.OperationPost, error) {
	if input.Description == "" {
		return nil, ErrPostDescriptionRequired
	}
	if input.HappenedAt.IsZero() {
		return nil, ErrPostHappenedAtRequired
	}

	if input.Type == "" {
		input.Type = models.PostTypeUpdate
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidPostType
	}

	post := &models.OperationPost{
		Title:                 input.Title,
		Description:           input.Description,
		Type:                  input.Type,
		AdditionalInformation: input.AdditionalInformation,
		HappenedAt:            input.HappenedAt,
		WrittenAt:             time.Now(),
		AuthorID:              authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.postRepo.FindByID(post.ID)
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound            = errors.New("assignment not found")
	ErrAssignmentDescriptionRequired = errors.New("description is required")
	ErrActionNotImplemented          = errors.New("action not implemented")
)

// PatchAction selects which mutation a patch request performs. Each action
// owns a fixed set of columns; caller-supplied values outside that set are
// ignored.
type PatchAction string

const (
	PatchActionEdit   PatchAction = "edit"
	PatchActionStart  PatchAction = "start"
	PatchActionFinish PatchAction = "finish"
)

// AssignmentService handles the assignments workflow.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
	}
}

// CreateAssignmentInput represents input for creating an assignment.
type CreateAssignmentInput struct {
	Title       string
	Description string
	AssigneeID  *uint64
}

// PatchAssignmentInput carries the action and the caller-supplied fields.
// Status, creator and changedAt never appear here: those columns can only be
// written by the start/finish actions themselves.
type PatchAssignmentInput struct {
	AssignmentID uint64
	Action       PatchAction
	Title        *string
	Description  *string
	AssigneeID   *uint64
}

// ListAssignments returns every assignment with creator/assignee resolved.
func (s *AssignmentService) ListAssignments() ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment persists a new assignment created by the given user.
func (s *AssignmentService) CreateAssignment(creatorID uint64, input CreateAssignmentInput) (*models.Assignment, error) {
	if input.Description == "" {
		return nil, ErrAssignmentDescriptionRequired
	}

	assignment := &models.Assignment{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.AssignmentStatusTodo,
		CreatorID:   creatorID,
		AssigneeID:  input.AssigneeID,
		ChangedAt:   time.Now(),
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.assignmentRepo.FindByID(assignment.ID)
}

// PatchAssignment applies one workflow action and returns the updated,
// resolved assignment.
//
//   - start: status becomes in-progress and the acting user becomes the
//     assignee, whatever the request body claimed.
//   - finish: status becomes done.
//   - edit: title/description are applied when present; the assignee changes
//     only when an explicit assignee id was supplied. Status and changedAt
//     are untouched.
func (s *AssignmentService) PatchAssignment(input PatchAssignmentInput, actorID uint64) (*models.Assignment, error) {
	var updates map[string]interface{}

	switch input.Action {
	case PatchActionStart:
		updates = map[string]interface{}{
			"status":      models.AssignmentStatusInProgress,
			"assignee_id": actorID,
			"changed_at":  time.Now(),
		}
	case PatchActionFinish:
		updates = map[string]interface{}{
			"status":     models.AssignmentStatusDone,
			"changed_at": time.Now(),
		}
	case PatchActionEdit:
		updates = map[string]interface{}{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			if *input.Description == "" {
				return nil, ErrAssignmentDescriptionRequired
			}
			updates["description"] = *input.Description
		}
		if input.AssigneeID != nil {
			updates["assignee_id"] = *input.AssigneeID
		}
	default:
		return nil, ErrActionNotImplemented
	}

	if len(updates) > 0 {
		if err := s.assignmentRepo.UpdateFields(input.AssignmentID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssignmentNotFound
			}
			return nil, fmt.Errorf("failed to patch assignment: %w", err)
		}
	}

	assignment, err := s.assignmentRepo.FindByID(input.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to reload assignment: %w", err)
	}

	return assignment, nil
}

// DeleteAssignment removes an assignment. Deleting an id that no longer
// exists succeeds; deletion is the one idempotent operation in this API.
func (s *AssignmentService) DeleteAssignment(id uint64) error {
	if err := s.assignmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

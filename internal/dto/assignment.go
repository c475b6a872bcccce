package dto

import (
	"time"

	"github.com/opsboard/intranet-api/internal/models"
)

// AssignmentDTO represents an assignment in API responses. Assignee is
// omitted entirely when the assignment has none.
type AssignmentDTO struct {
	ID          uint64                  `json:"id"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description"`
	Status      models.AssignmentStatus `json:"status"`
	ChangedAt   time.Time               `json:"changed_at"`
	Creator     UserDTO                 `json:"creator"`
	Assignee    *UserDTO                `json:"assignee,omitempty"`
}

// ToAssignmentDTO converts an Assignment model to AssignmentDTO.
// Creator and (when set) assignee relations are expected to be preloaded.
func ToAssignmentDTO(assignment models.Assignment) AssignmentDTO {
	dto := AssignmentDTO{
		ID:          assignment.ID,
		Title:       assignment.Title,
		Description: assignment.Description,
		Status:      assignment.Status,
		ChangedAt:   assignment.ChangedAt,
		Creator:     ToUserDTO(assignment.Creator),
	}

	if assignment.AssigneeID != nil && assignment.Assignee != nil {
		assignee := ToUserDTO(*assignment.Assignee)
		dto.Assignee = &assignee
	}

	return dto
}

// ToAssignmentDTOs converts a slice of assignments
func ToAssignmentDTOs(assignments []models.Assignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = ToAssignmentDTO(assignment)
	}
	return dtos
}

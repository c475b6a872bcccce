package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/middleware"
	"github.com/opsboard/intranet-api/internal/services"
)

// AssignmentHandler coordinates the assignments workflow.
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// ListAssignments returns every assignment with creator/assignee resolved.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignmentService.ListAssignments()
	if err != nil {
		log.Printf("Caught error while attempting to fetch assignments: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTOs(assignments))
}

// CreateAssignment creates a new assignment by the current user, optionally
// pre-assigned to someone.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateAssignmentRequest struct {
		Title       string  `json:"title"`
		Description string  `json:"description" binding:"required"`
		AssigneeID  *uint64 `json:"assignee_id"`
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(userID, services.CreateAssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		if errors.Is(err, services.ErrAssignmentDescriptionRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		log.Printf("Caught error while attempting to create assignment: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*assignment))
}

// PatchAssignment applies one workflow action (edit/start/finish) to an
// assignment. Status, creator and changedAt are not bound from the body on
// purpose: only the action itself may write them.
func (h *AssignmentHandler) PatchAssignment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type PatchAssignmentRequest struct {
		AssignmentID uint64  `json:"assignment_id" binding:"required"`
		Action       string  `json:"action" binding:"required"`
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		AssigneeID   *uint64 `json:"assignee_id"`
	}

	var req PatchAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.assignmentService.PatchAssignment(services.PatchAssignmentInput{
		AssignmentID: req.AssignmentID,
		Action:       services.PatchAction(req.Action),
		Title:        req.Title,
		Description:  req.Description,
		AssigneeID:   req.AssigneeID,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssignmentNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAssignmentDescriptionRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			// Includes unimplemented actions; the client sent something this
			// API does not do, which is a server-side taxonomy gap, not a 4xx.
			log.Printf("Caught error while attempting to patch assignment %d: %v", req.AssignmentID, err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*assignment))
}

// DeleteAssignment removes an assignment. Deleting an id that is already
// gone still responds 200.
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment id")
		return
	}

	if err := h.assignmentService.DeleteAssignment(id); err != nil {
		log.Printf("Caught error while attempting to delete assignment %d: %v", id, err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted successfully",
	})
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/services"
)

// CredentialHandler coordinates the shared credentials vault.
type CredentialHandler struct {
	credService *services.CredentialService
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(credService *services.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		credService: credService,
	}
}

// ListCredentials returns every vault entry.
func (h *CredentialHandler) ListCredentials(c *gin.Context) {
	creds, err := h.credService.ListCredentials()
	if err != nil {
		log.Printf("Caught error while attempting to fetch credentials: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToCredentialDTOs(creds))
}

// CreateCredential adds a vault entry.
func (h *CredentialHandler) CreateCredential(c *gin.Context) {
	type CreateCredentialRequest struct {
		Username              string `json:"username" binding:"required"`
		Password              string `json:"password" binding:"required"`
		Type                  string `json:"type"`
		AdditionalInformation string `json:"additional_information"`
	}

	var req CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	cred, err := h.credService.CreateCredential(services.CreateCredentialInput{
		Username:              req.Username,
		Password:              req.Password,
		Type:                  req.Type,
		AdditionalInformation: req.AdditionalInformation,
	})
	if err != nil {
		if errors.Is(err, services.ErrCredentialFieldsMissing) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		log.Printf("Caught error while attempting to create credential: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCredentialDTO(*cred))
}

// DeleteCredentials removes the requested vault entries; the table lets the
// user delete several rows at once.
func (h *CredentialHandler) DeleteCredentials(c *gin.Context) {
	type DeleteCredentialsRequest struct {
		IDs []uint64 `json:"ids" binding:"required"`
	}

	var req DeleteCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credService.DeleteCredentials(req.IDs); err != nil {
		log.Printf("Caught error while attempting to delete credentials: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Credentials deleted successfully",
	})
}

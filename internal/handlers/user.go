package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/constants"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/services"
)

// UserHandler coordinates registration, login and user listing.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new user and logs them in. The register form consumes
// plain-text responses, so no JSON envelope here.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, apierrors.TextMissingFields)
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Username: req.Username,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.String(http.StatusBadRequest, apierrors.TextMissingFields)
		case errors.Is(err, services.ErrUsernameTaken):
			c.String(http.StatusForbidden, apierrors.TextUserAlreadyExists)
		default:
			log.Printf("Caught error while attempting to add user '%s': %v", req.Username, err)
			c.String(http.StatusInternalServerError, apierrors.TextUnknownError)
		}
		return
	}

	log.Printf("User '%s (%s)' added successfully", user.Username, user.Nickname)

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		log.Printf("Failed to save session for new user '%s': %v", user.Username, err)
		c.String(http.StatusInternalServerError, apierrors.TextUnknownError)
		return
	}

	c.String(http.StatusCreated, apierrors.TextUserCreated)
}

// Login authenticates a user and initializes the session.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, err.Error())
			return
		}
		log.Printf("Caught error while attempting to log in user '%s': %v", req.Username, err)
		apierrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the authentication session.
func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// ListUsers returns every user without password hashes.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Printf("Caught error while attempting to fetch users: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/middleware"
	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/services"
)

// PostHandler coordinates the operation post feed.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts returns the full feed in stored order; the client sorts and
// filters it locally.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		log.Printf("Caught error while attempting to fetch posts: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToOperationPostDTOs(posts))
}

// CreatePost creates a new post authored by the current user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreatePostRequest struct {
		Title                 string          `json:"title"`
		Description           string          `json:"description" binding:"required"`
		Type                  models.PostType `json:"type"`
		AdditionalInformation string          `json:"additional_information"`
		HappenedAt            time.Time       `json:"happened_at" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(userID, services.CreatePostInput{
		Title:                 req.Title,
		Description:           req.Description,
		Type:                  req.Type,
		AdditionalInformation: req.AdditionalInformation,
		HappenedAt:            req.HappenedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostDescriptionRequired),
			errors.Is(err, services.ErrPostHappenedAtRequired),
			errors.Is(err, services.ErrInvalidPostType):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Printf("Caught error while attempting to create post: %v", err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperationPostDTO(*post))
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/constants"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/feed"
	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/services"
)

// GeneralHandler serves cross-entity endpoints.
type GeneralHandler struct {
	generalService *services.GeneralService
}

// NewGeneralHandler creates a new GeneralHandler.
func NewGeneralHandler(generalService *services.GeneralService) *GeneralHandler {
	return &GeneralHandler{
		generalService: generalService,
	}
}

// Overview returns entity counts and the most recently written posts.
func (h *GeneralHandler) Overview(c *gin.Context) {
	overview, err := h.generalService.GetOverview()
	if err != nil {
		log.Printf("Caught error while attempting to fetch overview data: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	recent := feed.Apply(dto.ToOperationPostDTOs(overview.Posts), feed.Options{
		Key:       feed.SortKeyWrittenAt,
		Direction: feed.SortDesc,
	})
	if len(recent) > constants.OverviewRecentPostCount {
		recent = recent[:constants.OverviewRecentPostCount]
	}

	c.JSON(http.StatusOK, dto.OverviewDTO{
		UserCount:    overview.UserCount,
		PostCount:    overview.PostCount,
		MessageCount: overview.MessageCount,
		Assignments: dto.AssignmentStatusCounts{
			NotStarted: overview.AssignmentCounts[models.AssignmentStatusTodo],
			InProgress: overview.AssignmentCounts[models.AssignmentStatusInProgress],
			Done:       overview.AssignmentCounts[models.AssignmentStatusDone],
		},
		RecentPosts: recent,
	})
}

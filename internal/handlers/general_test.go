package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/constants"
	"github.com/opsboard/intranet-api/internal/database"
	"github.com/opsboard/intranet-api/internal/dto"
	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
	"github.com/opsboard/intranet-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type generalTestEnv struct {
	db      *gorm.DB
	handler *GeneralHandler
}

func setupGeneralTestEnv(t *testing.T) generalTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.OperationPost{},
		&models.Assignment{},
		&models.Credential{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	generalService := services.NewGeneralService(userRepo, postRepo, assignmentRepo, messageRepo)
	handler := NewGeneralHandler(generalService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return generalTestEnv{db: db, handler: handler}
}

func TestGeneralHandler_Overview(t *testing.T) {
	env := setupGeneralTestEnv(t)
	user := createPostTestUser(t, env.db, "author")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		post := models.OperationPost{
			Description: fmt.Sprintf("post %d", i),
			Type:        models.PostTypeUpdate,
			HappenedAt:  base,
			WrittenAt:   base.Add(time.Duration(i) * time.Minute),
			AuthorID:    user.ID,
		}
		require.NoError(t, env.db.Create(&post).Error)
	}

	statuses := []models.AssignmentStatus{
		models.AssignmentStatusTodo,
		models.AssignmentStatusInProgress,
		models.AssignmentStatusDone,
		models.AssignmentStatusDone,
	}
	for _, status := range statuses {
		assignment := models.Assignment{
			Description: "work",
			Status:      status,
			CreatorID:   user.ID,
			ChangedAt:   time.Now(),
		}
		require.NoError(t, env.db.Create(&assignment).Error)
	}

	c, w := authContext(t, "GET", "/api/general/overview", nil, user.ID)
	env.handler.Overview(c)

	require.Equal(t, http.StatusOK, w.Code)

	var overview dto.OverviewDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	require.EqualValues(t, 1, overview.UserCount)
	require.EqualValues(t, 7, overview.PostCount)
	require.EqualValues(t, 1, overview.Assignments.NotStarted)
	require.EqualValues(t, 1, overview.Assignments.InProgress)
	require.EqualValues(t, 2, overview.Assignments.Done)

	// Recent posts are capped and ordered newest first by writtenAt.
	require.Len(t, overview.RecentPosts, constants.OverviewRecentPostCount)
	require.Equal(t, "post 6", overview.RecentPosts[0].Description)
	for i := 1; i < len(overview.RecentPosts); i++ {
		require.False(t, overview.RecentPosts[i-1].WrittenAt.Before(overview.RecentPosts[i].WrittenAt))
	}
}

func TestGeneralHandler_Overview_Empty(t *testing.T) {
	env := setupGeneralTestEnv(t)

	c, w := authContext(t, "GET", "/api/general/overview", nil, 1)
	env.handler.Overview(c)

	require.Equal(t, http.StatusOK, w.Code)

	var overview dto.OverviewDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	require.Zero(t, overview.UserCount)
	require.Zero(t, overview.PostCount)
	require.Empty(t, overview.RecentPosts)
}

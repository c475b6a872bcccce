package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type postTestEnv struct {
	db      *gorm.DB
	handler *PostHandler
}

func setupPostTestEnv(t *testing.T) postTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.OperationPost{})
	require.NoError(t, err)

	database.SetDB(db)

	postRepo := repository.NewPostRepository(db)
	postService := services.NewPostService(postRepo)
	handler := NewPostHandler(postService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return postTestEnv{db: db, handler: handler}
}

func createPostTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Nickname:     username,
		PasswordHash: "hashedpassword",
		Color:        "#aabbcc",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func authContext(t *testing.T, method, url string, payload any, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func TestPostHandler_CreatePost(t *testing.T) {
	env := setupPostTestEnv(t)
	author := createPostTestUser(t, env.db, "author")

	c, w := authContext(t, "POST", "/api/post", map[string]any{
		"description": "gate camera replaced",
		"type":        "update",
		"happened_at": time.Now().Format(time.RFC3339),
	}, author.ID)
	env.handler.CreatePost(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.OperationPostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.False(t, response.WrittenAt.IsZero())
	require.Equal(t, author.Username, response.Author.Username)
}

func TestPostHandler_CreatePost_DefaultsType(t *testing.T) {
	env := setupPostTestEnv(t)
	author := createPostTestUser(t, env.db, "author")

	c, w := authContext(t, "POST", "/api/post", map[string]any{
		"description": "gate camera replaced",
		"happened_at": time.Now().Format(time.RFC3339),
	}, author.ID)
	env.handler.CreatePost(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.OperationPostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.PostTypeUpdate, response.Type)
}

func TestPostHandler_CreatePost_UnknownType(t *testing.T) {
	env := setupPostTestEnv(t)
	author := createPostTestUser(t, env.db, "author")

	c, w := authContext(t, "POST", "/api/post", map[string]any{
		"description": "gate camera replaced",
		"type":        "gossip",
		"happened_at": time.Now().Format(time.RFC3339),
	}, author.ID)
	env.handler.CreatePost(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

// A freshly created post must show up in the list with writtenAt set and the
// author resolved without any password material.
func TestPostHandler_CreateThenList(t *testing.T) {
	env := setupPostTestEnv(t)
	author := createPostTestUser(t, env.db, "author")

	c, w := authContext(t, "POST", "/api/post", map[string]any{
		"title":       "Gate",
		"description": "gate camera replaced",
		"happened_at": time.Now().Format(time.RFC3339),
	}, author.ID)
	env.handler.CreatePost(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = authContext(t, "GET", "/api/post", nil, author.ID)
	env.handler.ListPosts(c)
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	require.NotEmpty(t, raw[0]["written_at"])

	postAuthor, ok := raw[0]["author"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "author", postAuthor["username"])
	require.NotContains(t, postAuthor, "password_hash")
	require.NotContains(t, postAuthor, "passwordHash")
}

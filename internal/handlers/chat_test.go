package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/constants"
	"github.com/opsboard/intranet-api/internal/database"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
	"github.com/opsboard/intranet-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type chatTestEnv struct {
	db      *gorm.DB
	handler *ChatHandler
}

func setupChatTestEnv(t *testing.T) chatTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.ChatMessage{})
	require.NoError(t, err)

	database.SetDB(db)

	messageRepo := repository.NewMessageRepository(db)
	chatService := services.NewChatService(messageRepo)
	handler := NewChatHandler(chatService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return chatTestEnv{db: db, handler: handler}
}

func chatContext(t *testing.T, body string, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/chat/postMessage", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func TestChatHandler_PostMessage_Text(t *testing.T) {
	env := setupChatTestEnv(t)
	user := createPostTestUser(t, env.db, "chatter")

	c, w := chatContext(t, `"hello everyone"`, user.ID)
	env.handler.PostMessage(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, apierrors.TextMessageAdded, w.Body.String())

	var message models.ChatMessage
	require.NoError(t, env.db.First(&message).Error)
	require.Equal(t, models.MessageTypeText, message.Type)
	require.Equal(t, "hello everyone", message.Message)
	require.Empty(t, message.FileType)
	require.Zero(t, message.FileSize)
	require.False(t, message.Timestamp.IsZero())
}

func TestChatHandler_PostMessage_PlainText(t *testing.T) {
	env := setupChatTestEnv(t)
	user := createPostTestUser(t, env.db, "chatter")

	// Not valid JSON at all; the raw body is the message.
	c, w := chatContext(t, "good morning", user.ID)
	env.handler.PostMessage(c)

	require.Equal(t, http.StatusOK, w.Code)

	var message models.ChatMessage
	require.NoError(t, env.db.First(&message).Error)
	require.Equal(t, models.MessageTypeText, message.Type)
	require.Equal(t, "good morning", message.Message)
}

func TestChatHandler_PostMessage_File(t *testing.T) {
	env := setupChatTestEnv(t)
	user := createPostTestUser(t, env.db, "chatter")

	c, w := chatContext(t, `{"name":"floorplan.pdf","type":"application/pdf","size":20480}`, user.ID)
	env.handler.PostMessage(c)

	require.Equal(t, http.StatusOK, w.Code)

	var message models.ChatMessage
	require.NoError(t, env.db.First(&message).Error)
	require.Equal(t, models.MessageTypeFile, message.Type)
	require.Equal(t, "floorplan.pdf", message.Message)
	require.Equal(t, "application/pdf", message.FileType)
	require.EqualValues(t, 20480, message.FileSize)
}

func TestChatHandler_PostMessage_EmptyBody(t *testing.T) {
	env := setupChatTestEnv(t)
	user := createPostTestUser(t, env.db, "chatter")

	c, w := chatContext(t, "", user.ID)
	env.handler.PostMessage(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.TextNoMessageSent, w.Body.String())

	var count int64
	env.db.Model(&models.ChatMessage{}).Count(&count)
	require.Zero(t, count)
}

func TestChatHandler_ListMessages(t *testing.T) {
	env := setupChatTestEnv(t)
	user := createPostTestUser(t, env.db, "chatter")

	for _, text := range []string{`"first"`, `"second"`} {
		c, w := chatContext(t, text, user.ID)
		env.handler.PostMessage(c)
		require.Equal(t, http.StatusOK, w.Code)
	}

	c, w := authContext(t, "GET", "/api/chat/message", nil, user.ID)
	env.handler.ListMessages(c)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.True(t, strings.Index(body, "first") < strings.Index(body, "second"),
		"messages must be chronological")
	require.NotContains(t, body, "password_hash")
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/dto"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/middleware"
	"github.com/opsboard/intranet-api/internal/services"
)

// ChatHandler coordinates chat messages.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// PostMessage stores one chat message for the current user. The body is
// either a JSON string (text message) or a {name,type,size} object (file
// message, descriptor only). Responses are plain text for the chat widget.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		c.String(http.StatusBadRequest, apierrors.TextNoMessageSent)
		return
	}

	_, err = h.chatService.CreateMessage(userID, parseMessageBody(body))
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.String(http.StatusBadRequest, apierrors.TextNoMessageSent)
			return
		}
		log.Printf("Caught error while attempting to create chat message: %v", err)
		c.String(http.StatusInternalServerError, apierrors.TextUnknownError)
		return
	}

	c.String(http.StatusOK, apierrors.TextMessageAdded)
}

// ListMessages returns the chat history in chronological order.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages()
	if err != nil {
		log.Printf("Caught error while attempting to fetch chat messages: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToChatMessageDTOs(messages))
}

// parseMessageBody discriminates the incoming payload: a JSON object with a
// name becomes a file descriptor, a JSON string becomes its text value, and
// anything else is taken verbatim as text.
func parseMessageBody(body []byte) services.MessageInput {
	var file struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Size int64  `json:"size"`
	}
	if err := json.Unmarshal(body, &file); err == nil && file.Name != "" {
		return services.MessageInput{File: &services.FileDescriptor{
			Name: file.Name,
			Type: file.Type,
			Size: file.Size,
		}}
	}

	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		return services.MessageInput{Text: text}
	}

	return services.MessageInput{Text: string(bytes.TrimSpace(body))}
}

package dto

import (
	"time"

	"github.com/opsboard/intranet-api/internal/models"
)

// ChatMessageDTO represents a chat message in API responses. FileType and
// FileSize are present only for file messages.
type ChatMessageDTO struct {
	ID        uint64             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Type      models.MessageType `json:"type"`
	Message   string             `json:"message"`
	FileType  string             `json:"file_type,omitempty"`
	FileSize  int64              `json:"file_size,omitempty"`
	User      UserDTO            `json:"user"`
}

// ToChatMessageDTO converts a ChatMessage model to ChatMessageDTO.
// The user relation is expected to be preloaded.
func ToChatMessageDTO(message models.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		ID:        message.ID,
		Timestamp: message.Timestamp,
		Type:      message.Type,
		Message:   message.Message,
		FileType:  message.FileType,
		FileSize:  message.FileSize,
		User:      ToUserDTO(message.User),
	}
}

// ToChatMessageDTOs converts a slice of messages
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, len(messages))
	for i, message := range messages {
		dtos[i] = ToChatMessageDTO(message)
	}
	return dtos
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
)

var (
	ErrEmptyMessage = errors.New("no message sent")
)

// ChatService handles chat messages.
type ChatService struct {
	messageRepo repository.MessageRepository
}

// NewChatService creates a new ChatService.
func NewChatService(messageRepo repository.MessageRepository) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
	}
}

// FileDescriptor describes a file shared in chat. Only the descriptor is
// stored; the bytes never reach this service.
type FileDescriptor struct {
	Name string
	Type string
	Size int64
}

// MessageInput is the discriminated message content: a file descriptor when
// File is set, plain text otherwise.
type MessageInput struct {
	Text string
	File *FileDescriptor
}

// CreateMessage persists a chat message for the given user, stamping the
// current time.
func (s *ChatService) CreateMessage(userID uint64, input MessageInput) (*models.ChatMessage, error) {
	message := &models.ChatMessage{
		Timestamp: time.Now(),
		UserID:    userID,
	}

	if input.File != nil {
		if input.File.Name == "" {
			return nil, ErrEmptyMessage
		}
		message.Type = models.MessageTypeFile
		message.Message = input.File.Name
		message.FileType = input.File.Type
		message.FileSize = input.File.Size
	} else {
		if input.Text == "" {
			return nil, ErrEmptyMessage
		}
		message.Type = models.MessageTypeText
		message.Message = input.Text
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}

	return message, nil
}

// ListMessages returns every message in chronological order with users
// resolved.
func (s *ChatService) ListMessages() ([]models.ChatMessage, error) {
	messages, err := s.messageRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

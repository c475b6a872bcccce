package repository

import (
	"github.com/opsboard/intranet-api/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create creates a new chat message
func (r *GormMessageRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListAll lists every message in chronological order with users resolved
func (r *GormMessageRepository) ListAll() ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Preload("User").
		Order("timestamp ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Count returns the total number of messages
func (r *GormMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatMessage{}).Count(&count).Error
	return count, err
}

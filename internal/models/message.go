package models

import (
	"time"
)

type MessageType string

const (
	MessageTypeText MessageType = "text"
	MessageTypeFile MessageType = "file"
)

type ChatMessage struct {
	ID        uint64      `gorm:"primarykey" json:"id"`
	Timestamp time.Time   `gorm:"not null" json:"timestamp"`
	UserID    uint64      `gorm:"not null" json:"user_id"`
	Type      MessageType `gorm:"type:varchar(10);not null" json:"type"`
	// Message holds the text content for text messages and the file name for
	// file messages.
	Message  string `gorm:"type:text;not null" json:"message"`
	FileType string `gorm:"type:varchar(128)" json:"file_type,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

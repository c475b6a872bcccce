package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Nickname     string    `gorm:"type:varchar(64);not null" json:"nickname"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Color        string    `gorm:"type:varchar(16);not null" json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Posts               []OperationPost `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAssignments  []Assignment    `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedAssignments []Assignment    `gorm:"foreignKey:AssigneeID" json:"-"`
	Messages            []ChatMessage   `gorm:"foreignKey:UserID" json:"-"`
}

package models

import (
	"time"
)

type AssignmentStatus string

const (
	AssignmentStatusTodo       AssignmentStatus = "not-started"
	AssignmentStatusInProgress AssignmentStatus = "in-progress"
	AssignmentStatusDone       AssignmentStatus = "done"
)

type Assignment struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	Title       string           `gorm:"type:varchar(255)" json:"title,omitempty"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Status      AssignmentStatus `gorm:"type:varchar(20);not null;default:'not-started'" json:"status"`
	CreatorID   uint64           `gorm:"not null" json:"creator_id"`
	AssigneeID  *uint64          `json:"assignee_id,omitempty"`
	// ChangedAt is bumped on creation and on every status-affecting mutation.
	ChangedAt time.Time `gorm:"not null" json:"changed_at"`

	// Relations
	Creator  User  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}

package models

import (
	"time"
)

type PostType string

const (
	PostTypeUpdate  PostType = "update"
	PostTypeSuccess PostType = "success"
	PostTypeFailure PostType = "failure"
	PostTypeAlert   PostType = "alert"
	PostTypeOther   PostType = "other"
)

// PostTypes lists every valid operation post type.
var PostTypes = []PostType{
	PostTypeUpdate,
	PostTypeSuccess,
	PostTypeFailure,
	PostTypeAlert,
	PostTypeOther,
}

// Valid reports whether t is one of the known post types.
func (t PostType) Valid() bool {
	for _, known := range PostTypes {
		if t == known {
			return true
		}
	}
	return false
}

type OperationPost struct {
	ID                    uint64   `gorm:"primarykey" json:"id"`
	Title                 string   `gorm:"type:varchar(255)" json:"title,omitempty"`
	Description           string   `gorm:"type:text;not null" json:"description"`
	Type                  PostType `gorm:"type:varchar(20);not null;default:'update'" json:"type"`
	AdditionalInformation string   `gorm:"type:text" json:"additional_information,omitempty"`
	// HappenedAt is when the reported event took place, supplied by the author.
	HappenedAt time.Time `gorm:"not null" json:"happened_at"`
	// WrittenAt is set once at creation and never updated.
	WrittenAt time.Time `gorm:"not null;<-:create" json:"written_at"`
	AuthorID  uint64    `gorm:"not null" json:"author_id"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

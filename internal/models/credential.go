package models

import (
	"time"
)

// Credential is an entry in the shared vault. Entries are not scoped per
// user; everyone with a session can read the whole vault.
type Credential struct {
	ID                    uint64    `gorm:"primarykey" json:"id"`
	Username              string    `gorm:"type:varchar(255);not null" json:"username"`
	Password              string    `gorm:"type:varchar(255);not null" json:"password"`
	Type                  string    `gorm:"type:varchar(64)" json:"type,omitempty"`
	AdditionalInformation string    `gorm:"type:text" json:"additional_information,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

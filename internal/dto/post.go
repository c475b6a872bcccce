package dto

import (
	"time"

	"github.com/opsboard/intranet-api/internal/models"
)

// OperationPostDTO represents an operation post in API responses
type OperationPostDTO struct {
	ID                    uint64          `json:"id"`
	Title                 string          `json:"title,omitempty"`
	Description           string          `json:"description"`
	Type                  models.PostType `json:"type"`
	AdditionalInformation string          `json:"additional_information,omitempty"`
	HappenedAt            time.Time       `json:"happened_at"`
	WrittenAt             time.Time       `json:"written_at"`
	Author                UserDTO         `json:"author"`
}

// ToOperationPostDTO converts an OperationPost model to OperationPostDTO.
// The author relation is expected to be preloaded.
func ToOperationPostDTO(post models.OperationPost) OperationPostDTO {
	return OperationPostDTO{
		ID:                    post.ID,
		Title:                 post.Title,
		Description:           post.Description,
		Type:                  post.Type,
		AdditionalInformation: post.AdditionalInformation,
		HappenedAt:            post.HappenedAt,
		WrittenAt:             post.WrittenAt,
		Author:                ToUserDTO(post.Author),
	}
}

// ToOperationPostDTOs converts a slice of posts
func ToOperationPostDTOs(posts []models.OperationPost) []OperationPostDTO {
	dtos := make([]OperationPostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToOperationPostDTO(post)
	}
	return dtos
}

package dto

import (
	"github.com/opsboard/intranet-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of this shape; every resolved user reference goes through here.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Color    string `json:"color"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Color:    user.Color,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

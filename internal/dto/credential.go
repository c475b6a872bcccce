package dto

import (
	"github.com/opsboard/intranet-api/internal/models"
)

// CredentialDTO represents a vault entry in API responses
type CredentialDTO struct {
	ID                    uint64 `json:"id"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	Type                  string `json:"type,omitempty"`
	AdditionalInformation string `json:"additional_information,omitempty"`
}

// ToCredentialDTO converts a Credential model to CredentialDTO
func ToCredentialDTO(cred models.Credential) CredentialDTO {
	return CredentialDTO{
		ID:                    cred.ID,
		Username:              cred.Username,
		Password:              cred.Password,
		Type:                  cred.Type,
		AdditionalInformation: cred.AdditionalInformation,
	}
}

// ToCredentialDTOs converts a slice of credentials
func ToCredentialDTOs(creds []models.Credential) []CredentialDTO {
	dtos := make([]CredentialDTO, len(creds))
	for i, cred := range creds {
		dtos[i] = ToCredentialDTO(cred)
	}
	return dtos
}

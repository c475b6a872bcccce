package services

import (
	"errors"
	"fmt"

	"github.com/opsboard/intranet-api/internal/models"
	"github.com/opsboard/intranet-api/internal/repository"
)

var (
	ErrCredentialFieldsMissing = errors.New("username and password are required")
)

// CredentialService handles the shared credentials vault.
type CredentialService struct {
	credRepo repository.CredentialRepository
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(credRepo repository.CredentialRepository) *CredentialService {
	return &CredentialService{
		credRepo: credRepo,
	}
}

// CreateCredentialInput represents input for adding a vault entry.
type CreateCredentialInput struct {
	Username              string
	Password              string
	Type                  string
	AdditionalInformation string
}

// ListCredentials returns every vault entry.
func (s *CredentialService) ListCredentials() ([]models.Credential, error) {
	creds, err := s.credRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return creds, nil
}

// CreateCredential adds a new entry to the vault.
func (s *CredentialService) CreateCredential(input CreateCredentialInput) (*models.Credential, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrCredentialFieldsMissing
	}

	cred := &models.Credential{
		Username:              input.Username,
		Password:              input.Password,
		Type:                  input.Type,
		AdditionalInformation: input.AdditionalInformation,
	}

	if err := s.credRepo.Create(cred); err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	return cred, nil
}

// DeleteCredentials removes the given entries. Ids that are already gone
// are ignored.
func (s *CredentialService) DeleteCredentials(ids []uint64) error {
	if err := s.credRepo.DeleteByIDs(ids); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

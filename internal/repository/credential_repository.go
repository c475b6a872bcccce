package repository

import (
	"github.com/opsboard/intranet-api/internal/models"
	"gorm.io/gorm"
)

// GormCredentialRepository is a GORM implementation of CredentialRepository
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Create creates a new credential
func (r *GormCredentialRepository) Create(cred *models.Credential) error {
	return r.db.Create(cred).Error
}

// ListAll lists every credential
func (r *GormCredentialRepository) ListAll() ([]models.Credential, error) {
	var creds []models.Credential
	if err := r.db.Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

// DeleteByIDs removes the given credentials in one statement; ids that do
// not exist are skipped, so the operation is idempotent.
func (r *GormCredentialRepository) DeleteByIDs(ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&models.Credential{}).Error
}

package repository

import (
	"github.com/opsboard/intranet-api/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// FindByID finds an assignment by ID with creator/assignee resolved
func (r *GormAssignmentRepository) FindByID(id uint64) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Preload("Creator").Preload("Assignee").
		First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListAll lists every assignment with creator/assignee resolved
func (r *GormAssignmentRepository) ListAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Preload("Creator").Preload("Assignee").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateFields applies the given column updates to one assignment. The
// caller decides which columns an action may touch; nothing else is written.
func (r *GormAssignmentRepository) UpdateFields(id uint64, updates map[string]interface{}) error {
	if err := r.db.First(&models.Assignment{}, id).Error; err != nil {
		return err
	}

	return r.db.Model(&models.Assignment{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes an assignment. Deleting an absent id affects zero rows and
// is deliberately not an error.
func (r *GormAssignmentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Assignment{}, id).Error
}

// CountByStatus returns the number of assignments per status
func (r *GormAssignmentRepository) CountByStatus() (map[models.AssignmentStatus]int64, error) {
	type statusCount struct {
		Status models.AssignmentStatus
		Count  int64
	}

	var rows []statusCount
	if err := r.db.Model(&models.Assignment{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.AssignmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

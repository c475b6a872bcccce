package repository

import (
	"github.com/opsboard/intranet-api/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.OperationPost) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID with the author resolved
func (r *GormPostRepository) FindByID(id uint64) (*models.OperationPost, error) {
	var post models.OperationPost
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll lists every post in stored order with authors resolved. Sorting
// and type filtering happen on the client over the full list.
func (r *GormPostRepository) ListAll() ([]models.OperationPost, error) {
	var posts []models.OperationPost
	if err := r.db.Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts
func (r *GormPostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.OperationPost{}).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/opsboard/intranet-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ListAll lists every user
	ListAll() ([]models.User, error)

	// Count returns the total number of users
	Count() (int64, error)
}

// PostRepository defines the interface for operation post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.OperationPost) error

	// FindByID finds a post by ID with the author resolved
	FindByID(id uint64) (*models.OperationPost, error)

	// ListAll lists every post in stored order with authors resolved
	ListAll() ([]models.OperationPost, error)

	// Count returns the total number of posts
	Count() (int64, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// Create creates a new assignment
	Create(assignment *models.Assignment) error

	// FindByID finds an assignment by ID with creator/assignee resolved
	FindByID(id uint64) (*models.Assignment, error)

	// ListAll lists every assignment with creator/assignee resolved
	ListAll() ([]models.Assignment, error)

	// UpdateFields applies the given column updates to one assignment.
	// Returns gorm.ErrRecordNotFound when the id does not exist.
	UpdateFields(id uint64, updates map[string]interface{}) error

	// Delete removes an assignment; deleting an absent id is not an error
	Delete(id uint64) error

	// CountByStatus returns the number of assignments per status
	CountByStatus() (map[models.AssignmentStatus]int64, error)
}

// CredentialRepository defines the interface for vault data access
type CredentialRepository interface {
	// Create creates a new credential
	Create(cred *models.Credential) error

	// ListAll lists every credential
	ListAll() ([]models.Credential, error)

	// DeleteByIDs removes the given credentials; absent ids are skipped
	DeleteByIDs(ids []uint64) error
}

// MessageRepository defines the interface for chat message data access
type MessageRepository interface {
	// Create creates a new chat message
	Create(message *models.ChatMessage) error

	// ListAll lists every message in chronological order with users resolved
	ListAll() ([]models.ChatMessage, error)

	// Count returns the total number of messages
	Count() (int64, error)
}

package repository

import "github.com/triptales/triptales-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]entity.User, error)
	// SetRestricted flips the restriction flag and returns the updated row.
	SetRestricted(id int64, restricted bool) (*entity.User, error)
}

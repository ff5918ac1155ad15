package repository

import "github.com/triptales/triptales-api/internal/domain/entity"

// PostRepository persists destination posts.
type PostRepository interface {
	Create(p *entity.Post) (int64, error)
	GetByID(id int64) (*entity.Post, error)
	IncrementViews(id int64) error
	// List returns visible (non-hidden) posts plus the total visible count.
	List(limit, offset int) ([]entity.Post, int64, error)
	SetHidden(id int64, hidden bool) error
	SearchByDestination(q string) ([]entity.Post, error)
}

// CategoryRepository persists post categories.
type CategoryRepository interface {
	List() ([]entity.Category, error)
	Create(name string) (int64, error)
	Delete(id int64) error
}

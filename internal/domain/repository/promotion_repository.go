package repository

import (
	"time"

	"github.com/triptales/triptales-api/internal/domain/entity"
)

// UpdatePromotionInput carries the subset of fields an update supplies.
// Zero values mean "leave unchanged".
type UpdatePromotionInput struct {
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// PromotionRepository persists promotions and serves the aggregated
// promotion read model. Multi-row mutations (promotion + images) run inside
// a single transaction.
type PromotionRepository interface {
	// Create inserts the promotion and its image rows atomically and
	// returns the new id. Status starts at pending.
	Create(p *entity.Promotion, imageURLs []string) (int64, error)
	Get(id int64) (*entity.Promotion, error)
	// Update patches the supplied fields; when imageURLs is non-nil the full
	// image set is replaced (delete-then-insert) in the same transaction.
	Update(id int64, in UpdatePromotionInput, imageURLs []string) error
	Delete(id int64) error
	UpdateStatus(id int64, status string) error

	// Aggregated read model (one record per promotion, images grouped).
	GetView(id int64) (*entity.PromotionView, error)
	ListViews(limit, offset int) ([]entity.PromotionView, int64, error)
	ListApprovedViews() ([]entity.PromotionView, error)
	ListViewsByAuthor(authorID int64) ([]entity.PromotionView, error)
	SearchViewsByDestination(q string) ([]entity.PromotionView, error)
}

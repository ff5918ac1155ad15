package repository

import "github.com/triptales/triptales-api/internal/domain/entity"

// EngagementRepository persists ratings, comments, and likes. These rows are
// only ever exposed through aggregate counts on the read models, plus the
// comment listings.
type EngagementRepository interface {
	// RatePromotion upserts the caller's rating for a promotion.
	RatePromotion(promotionID, userID int64, value int) error
	CreateComment(c *entity.Comment) (int64, error)
	ListComments(target string, targetID int64) ([]entity.Comment, error)
	// ToggleLike adds or removes the caller's like; returns true when the
	// like now exists.
	ToggleLike(target string, targetID, userID int64) (bool, error)
}

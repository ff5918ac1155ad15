package entity

import "time"

// Engagement target kinds for comments and likes.
const (
	TargetPost      = "post"
	TargetPromotion = "promotion"
)

func ValidTarget(s string) bool {
	return s == TargetPost || s == TargetPromotion
}

// Rating is one user's numeric score for a promotion. Only aggregates
// (average, count) are ever exposed in read models.
type Rating struct {
	ID          int64     `json:"rating_id"`
	PromotionID int64     `json:"promotion_id"`
	UserID      int64     `json:"user_id"`
	Value       int       `json:"rating_value"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment references either a post or a promotion, never both.
type Comment struct {
	ID          int64     `json:"comment_id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	PostID      *int64    `json:"post_id,omitempty"`
	PromotionID *int64    `json:"promotion_id,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

package entity

import "time"

// Promotion status values. Transitions are permissive: any status may be set
// from any other, gated by admin role only.
const (
	PromotionStatusPending  = "pending"
	PromotionStatusApproved = "approved"
	PromotionStatusDenied   = "denied"
)

func ValidPromotionStatus(s string) bool {
	switch s {
	case PromotionStatusPending, PromotionStatusApproved, PromotionStatusDenied:
		return true
	}
	return false
}

// Promotion is a business-submitted destination advertisement subject to
// admin approval. It owns its gallery images (cascade-deleted with it).
type Promotion struct {
	ID                       int64
	Title                    string
	Description              string
	StartDate                time.Time
	EndDate                  time.Time
	Destination              string
	Latitude                 float64
	Longitude                float64
	AuthorID                 int64
	BusinessCertificateImage string
	Status                   string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// PromotionImage belongs to exactly one promotion.
type PromotionImage struct {
	ID          int64
	PromotionID int64
	ImageURL    string
}

// Author is the denormalized author identity embedded in promotion views.
type Author struct {
	Username     string `json:"username"`
	ProfilePhoto string `json:"profilePhoto"`
}

// PromotionView is the aggregated read model: one logical record per
// promotion regardless of how many image/rating/comment/like rows joined in.
// Images is always non-nil and AverageRating is a fixed two-decimal string
// ("0.00" when no ratings exist).
type PromotionView struct {
	ID                       int64     `json:"id"`
	Title                    string    `json:"title"`
	Description              string    `json:"description"`
	StartDate                time.Time `json:"start_date"`
	EndDate                  time.Time `json:"end_date"`
	Destination              string    `json:"destination"`
	Latitude                 float64   `json:"latitude"`
	Longitude                float64   `json:"longitude"`
	Status                   string    `json:"status"`
	BusinessCertificateImage string    `json:"businessCertificateImage"`
	Images                   []string  `json:"images"`
	Author                   Author    `json:"author"`
	AverageRating            string    `json:"averageRating"`
	TotalRatings             int64     `json:"totalRatings"`
	CommentCount             int64     `json:"commentCount"`
	LikeCount                int64     `json:"likeCount"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

package postgres

import (
	"strconv"
	"time"

	"github.com/triptales/triptales-api/internal/domain/entity"
)

// promotionRow is one row of the joined promotion query: promotion scalars,
// the (possibly missing) author identity, aggregate figures from scalar
// subqueries, and at most one gallery image URL. A promotion with N images
// produces N rows; one with zero images produces a single row with a NULL
// image.
type promotionRow struct {
	ID           int64
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	Destination  string
	Latitude     float64
	Longitude    float64
	Status       string
	Certificate  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AuthorName   *string
	AuthorPhoto  *string
	AvgRating    *float64
	TotalRatings int64
	CommentCount int64
	LikeCount    int64
	ImageURL     *string
}

// groupPromotionRows flattens joined rows into one view per promotion,
// preserving the query's row order. Images is always non-nil, so a promotion
// without gallery rows serializes as [] rather than null.
func groupPromotionRows(rows []promotionRow) []entity.PromotionView {
	var order []int64
	byID := make(map[int64]*entity.PromotionView)
	for _, r := range rows {
		v, ok := byID[r.ID]
		if !ok {
			v = &entity.PromotionView{
				ID:                       r.ID,
				Title:                    r.Title,
				Description:              r.Description,
				StartDate:                r.StartDate,
				EndDate:                  r.EndDate,
				Destination:              r.Destination,
				Latitude:                 r.Latitude,
				Longitude:                r.Longitude,
				Status:                   r.Status,
				BusinessCertificateImage: r.Certificate,
				Images:                   []string{},
				Author: entity.Author{
					Username:     fallback(r.AuthorName, "Unknown"),
					ProfilePhoto: fallback(r.AuthorPhoto, entity.DefaultProfilePhoto),
				},
				AverageRating: formatRating(r.AvgRating),
				TotalRatings:  r.TotalRatings,
				CommentCount:  r.CommentCount,
				LikeCount:     r.LikeCount,
				CreatedAt:     r.CreatedAt,
				UpdatedAt:     r.UpdatedAt,
			}
			byID[r.ID] = v
			order = append(order, r.ID)
		}
		if r.ImageURL != nil && *r.ImageURL != "" {
			v.Images = append(v.Images, *r.ImageURL)
		}
	}
	out := make([]entity.PromotionView, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// formatRating renders the mean rating with exactly two decimals, "0.00"
// when no ratings exist.
func formatRating(avg *float64) string {
	if avg == nil {
		return "0.00"
	}
	return strconv.FormatFloat(*avg, 'f', 2, 64)
}

func fallback(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

package entity

import "time"

// Report status values (default Pending). Like promotions, transitions are
// permissive and admin-gated.
const (
	ReportStatusPending  = "Pending"
	ReportStatusResolved = "Resolved"
	ReportStatusIgnored  = "Ignored"
)

func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusIgnored:
		return true
	}
	return false
}

// Report target item types.
const (
	ReportItemPost      = "post"
	ReportItemComment   = "comment"
	ReportItemPromotion = "promotion"
)

func ValidReportItemType(s string) bool {
	switch s {
	case ReportItemPost, ReportItemComment, ReportItemPromotion:
		return true
	}
	return false
}

// Report is a moderation flag raised by a user against exactly one of a
// post, comment, or promotion. The target exclusivity is enforced at
// creation; reports are never mutated by their author afterwards.
type Report struct {
	ID          int64     `json:"report_id"`
	ReporterID  int64     `json:"reporter_id"`
	PostID      *int64    `json:"post_id,omitempty"`
	CommentID   *int64    `json:"comment_id,omitempty"`
	PromotionID *int64    `json:"promotion_id,omitempty"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

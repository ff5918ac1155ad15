package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

var (
	ErrReportNoTarget        = errors.New("at least one of post_id, comment_id, or promotion_id must be provided")
	ErrReportMultipleTargets = errors.New("only one of post_id, comment_id, or promotion_id can be provided at a time")
	ErrReportReasonRequired  = errors.New("reason is required")
	ErrInvalidReportStatus   = errors.New("invalid report status")
	ErrInvalidReportItemType = errors.New("invalid report item type")
	ErrReportNotFound        = errors.New("report not found")
)

// CreateReportInput carries the reporter's submission. Exactly one target id
// must be set; the service rejects zero or several before touching storage.
type CreateReportInput struct {
	ReporterID  int64
	PostID      *int64
	CommentID   *int64
	PromotionID *int64
	Reason      string
}

type ReportService struct {
	Repo   repo.ReportRepository
	Logger *logrus.Logger
}

func NewReportService(r repo.ReportRepository, logger *logrus.Logger) *ReportService {
	return &ReportService{Repo: r, Logger: logger}
}

func (s *ReportService) Create(in CreateReportInput) (int64, error) {
	targets := 0
	for _, id := range []*int64{in.PostID, in.CommentID, in.PromotionID} {
		if id != nil {
			targets++
		}
	}
	if targets == 0 {
		return 0, ErrReportNoTarget
	}
	if targets > 1 {
		return 0, ErrReportMultipleTargets
	}
	if in.Reason == "" {
		return 0, ErrReportReasonRequired
	}

	r := &entity.Report{
		ReporterID:  in.ReporterID,
		PostID:      in.PostID,
		CommentID:   in.CommentID,
		PromotionID: in.PromotionID,
		Reason:      in.Reason,
		Status:      entity.ReportStatusPending,
	}
	if err := s.Repo.Create(r); err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *ReportService) ListByTarget(itemType string, itemID int64) ([]entity.Report, error) {
	if !entity.ValidReportItemType(itemType) {
		return nil, ErrInvalidReportItemType
	}
	return s.Repo.ListByTarget(itemType, itemID)
}

func (s *ReportService) List(page, limit int) ([]entity.Report, Pagination, error) {
	reports, total, err := s.Repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return reports, NewPagination(page, limit, total), nil
}

func (s *ReportService) UpdateStatus(id int64, status string) error {
	if !entity.ValidReportStatus(status) {
		return ErrInvalidReportStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return nil
}

package repository

import "github.com/triptales/triptales-api/internal/domain/entity"

// ReportRepository persists moderation reports.
type ReportRepository interface {
	Create(r *entity.Report) error
	ListByTarget(itemType string, itemID int64) ([]entity.Report, error)
	List(limit, offset int) ([]entity.Report, int64, error)
	UpdateStatus(id int64, status string) error
}

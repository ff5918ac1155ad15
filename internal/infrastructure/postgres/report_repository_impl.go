package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
)

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

const reportColumns = `id, reporter_id, post_id, comment_id, promotion_id, reason, status, created_at`

func (r *ReportRepository) Create(rep *entity.Report) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reports (reporter_id, post_id, comment_id, promotion_id, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rep.ReporterID, rep.PostID, rep.CommentID, rep.PromotionID, rep.Reason,
		entity.ReportStatusPending)
	if err := row.Scan(&rep.ID, &rep.CreatedAt); err != nil {
		return err
	}
	rep.Status = entity.ReportStatusPending
	return nil
}

func (r *ReportRepository) ListByTarget(itemType string, itemID int64) ([]entity.Report, error) {
	var col string
	switch itemType {
	case entity.ReportItemPost:
		col = "post_id"
	case entity.ReportItemComment:
		col = "comment_id"
	case entity.ReportItemPromotion:
		col = "promotion_id"
	default:
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+reportColumns+` FROM reports WHERE `+col+` = $1 ORDER BY created_at DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *ReportRepository) List(limit, offset int) ([]entity.Report, int64, error) {
	ctx := context.Background()
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+reportColumns+` FROM reports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reports, err := scanReports(rows)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *ReportRepository) UpdateStatus(id int64, status string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE reports SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanReports(rows pgx.Rows) ([]entity.Report, error) {
	var out []entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.PostID, &rep.CommentID,
			&rep.PromotionID, &rep.Reason, &rep.Status, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

var _ repository.ReportRepository = (*ReportRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
)

// viewSelect is the joined query behind the aggregated promotion read model.
// Rating/comment/like figures come from scalar subqueries so the image join
// cannot multiply them; image rows are grouped per promotion in Go.
const viewSelect = `
	SELECT
		p.id, p.title, p.description, p.start_date, p.end_date, p.destination,
		p.latitude, p.longitude, p.status, p.business_certificate_image,
		p.created_at, p.updated_at,
		u.username, u.profile_photo,
		(SELECT AVG(r.rating_value)::float8 FROM ratings r WHERE r.promotion_id = p.id),
		(SELECT COUNT(*) FROM ratings r WHERE r.promotion_id = p.id),
		(SELECT COUNT(*) FROM comments c WHERE c.promotion_id = p.id),
		(SELECT COUNT(*) FROM likes l WHERE l.promotion_id = p.id),
		pi.image_url
	FROM promotion p
	LEFT JOIN users u ON u.id = p.author_id
	LEFT JOIN promotion_images pi ON pi.promotion_id = p.id
`

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

func (r *PromotionRepository) Create(p *entity.Promotion, imageURLs []string) (int64, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO promotion
			(title, description, start_date, end_date, destination,
			 latitude, longitude, author_id, business_certificate_image, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Description, p.StartDate, p.EndDate, p.Destination,
		p.Latitude, p.Longitude, p.AuthorID, p.BusinessCertificateImage,
		entity.PromotionStatusPending)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return 0, err
	}
	for _, url := range imageURLs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO promotion_images (promotion_id, image_url) VALUES ($1, $2)
		`, p.ID, url); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	p.Status = entity.PromotionStatusPending
	return p.ID, nil
}

func (r *PromotionRepository) Get(id int64) (*entity.Promotion, error) {
	ctx := context.Background()
	p := &entity.Promotion{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, start_date, end_date, destination,
		       latitude, longitude, author_id, business_certificate_image,
		       status, created_at, updated_at
		FROM promotion
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
		&p.Destination, &p.Latitude, &p.Longitude, &p.AuthorID,
		&p.BusinessCertificateImage, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update patches the supplied scalar fields and, when imageURLs is non-nil,
// replaces the full image set. Everything runs in one transaction so a
// failed image insert rolls the whole operation back.
func (r *PromotionRepository) Update(id int64, in repository.UpdatePromotionInput, imageURLs []string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set := "updated_at = now()"
	args := []any{}
	n := 0
	add := func(col string, val any) {
		n++
		set += ", " + col + " = $" + strconv.Itoa(n)
		args = append(args, val)
	}
	if in.Title != "" {
		add("title", in.Title)
	}
	if in.Description != "" {
		add("description", in.Description)
	}
	if in.StartDate != nil {
		add("start_date", *in.StartDate)
	}
	if in.EndDate != nil {
		add("end_date", *in.EndDate)
	}
	args = append(args, id)
	res, err := tx.Exec(ctx, "UPDATE promotion SET "+set+" WHERE id = $"+strconv.Itoa(n+1), args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if imageURLs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM promotion_images WHERE promotion_id = $1`, id); err != nil {
			return err
		}
		for _, url := range imageURLs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO promotion_images (promotion_id, image_url) VALUES ($1, $2)
			`, id, url); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}

// Delete removes the promotion; image rows go with it via the FK cascade.
func (r *PromotionRepository) Delete(id int64) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM promotion WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PromotionRepository) UpdateStatus(id int64, status string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE promotion SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PromotionRepository) GetView(id int64) (*entity.PromotionView, error) {
	views, err := r.queryViews(viewSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, repository.ErrNotFound
	}
	return &views[0], nil
}

func (r *PromotionRepository) ListViews(limit, offset int) ([]entity.PromotionView, int64, error) {
	ctx := context.Background()
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM promotion`).Scan(&total); err != nil {
		return nil, 0, err
	}
	// The window is applied to promotion ids before the image join so a
	// many-image promotion cannot eat the whole page.
	views, err := r.queryViews(viewSelect+`
		JOIN (
			SELECT id FROM promotion ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2
		) page ON page.id = p.id
		ORDER BY p.created_at DESC, p.id DESC
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *PromotionRepository) ListApprovedViews() ([]entity.PromotionView, error) {
	return r.queryViews(viewSelect+`
		WHERE p.status = $1
		ORDER BY p.created_at DESC, p.id DESC
	`, entity.PromotionStatusApproved)
}

func (r *PromotionRepository) ListViewsByAuthor(authorID int64) ([]entity.PromotionView, error) {
	return r.queryViews(viewSelect+`
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`, authorID)
}

func (r *PromotionRepository) SearchViewsByDestination(q string) ([]entity.PromotionView, error) {
	return r.queryViews(viewSelect+`
		WHERE p.destination ILIKE $1
		ORDER BY p.created_at DESC, p.id DESC
	`, "%"+q+"%")
}

func (r *PromotionRepository) queryViews(query string, args ...any) ([]entity.PromotionView, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw []promotionRow
	for rows.Next() {
		var pr promotionRow
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.Description, &pr.StartDate,
			&pr.EndDate, &pr.Destination, &pr.Latitude, &pr.Longitude,
			&pr.Status, &pr.Certificate, &pr.CreatedAt, &pr.UpdatedAt,
			&pr.AuthorName, &pr.AuthorPhoto, &pr.AvgRating, &pr.TotalRatings,
			&pr.CommentCount, &pr.LikeCount, &pr.ImageURL); err != nil {
			return nil, err
		}
		raw = append(raw, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groupPromotionRows(raw), nil
}

var _ repository.PromotionRepository = (*PromotionRepository)(nil)

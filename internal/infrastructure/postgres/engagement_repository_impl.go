package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
)

type EngagementRepository struct {
	pool *pgxpool.Pool
}

func NewEngagementRepository(pool *pgxpool.Pool) *EngagementRepository {
	return &EngagementRepository{pool: pool}
}

// RatePromotion upserts on the (promotion, user) unique pair so a rater can
// revise their score without growing the table.
func (r *EngagementRepository) RatePromotion(promotionID, userID int64, value int) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ratings (promotion_id, user_id, rating_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (promotion_id, user_id)
		DO UPDATE SET rating_value = EXCLUDED.rating_value
	`, promotionID, userID, value)
	return err
}

func (r *EngagementRepository) CreateComment(c *entity.Comment) (int64, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (user_id, post_id, promotion_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.UserID, c.PostID, c.PromotionID, c.Content)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *EngagementRepository) ListComments(target string, targetID int64) ([]entity.Comment, error) {
	col := "post_id"
	if target == entity.TargetPromotion {
		col = "promotion_id"
	}
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, COALESCE(u.username, 'Unknown'), c.post_id, c.promotion_id, c.content, c.created_at
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.`+col+` = $1
		ORDER BY c.created_at
	`, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.PostID, &c.PromotionID,
			&c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *EngagementRepository) ToggleLike(target string, targetID, userID int64) (bool, error) {
	col := "post_id"
	if target == entity.TargetPromotion {
		col = "promotion_id"
	}
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE `+col+` = $1 AND user_id = $2
	`, targetID, userID)
	if err != nil {
		return false, err
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO likes (`+col+`, user_id) VALUES ($1, $2)
	`, targetID, userID)
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ repository.EngagementRepository = (*EngagementRepository)(nil)

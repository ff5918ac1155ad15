package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, user_id, title, content, category_id, image_url, destination, latitude, longitude, hidden, views, created_at`

func (r *PostRepository) Create(p *entity.Post) (int64, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, title, content, category_id, image_url, destination, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, p.UserID, p.Title, p.Content, p.CategoryID, p.ImageURL, p.Destination, p.Latitude, p.Longitude)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *PostRepository) GetByID(id int64) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+` FROM posts WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CategoryID,
		&p.ImageURL, &p.Destination, &p.Latitude, &p.Longitude, &p.Hidden,
		&p.Views, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) IncrementViews(id int64) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PostRepository) List(limit, offset int) ([]entity.Post, int64, error) {
	ctx := context.Background()
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE NOT hidden`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE NOT hidden
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) SetHidden(id int64, hidden bool) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `UPDATE posts SET hidden = $1 WHERE id = $2`, hidden, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) SearchByDestination(q string) ([]entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE destination ILIKE $1 AND NOT hidden
		ORDER BY created_at DESC, id DESC
	`, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]entity.Post, error) {
	var out []entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CategoryID,
			&p.ImageURL, &p.Destination, &p.Latitude, &p.Longitude, &p.Hidden,
			&p.Views, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Create(name string) (int64, error) {
	ctx := context.Background()
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	return id, err
}

func (r *CategoryRepository) Delete(id int64) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

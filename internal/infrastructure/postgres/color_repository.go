package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
)

var _ repository.ColorRepository = (*ColorRepo)(nil)

type ColorRepo struct {
	q Querier
}

func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

func (r *ColorRepo) Create(ctx context.Context, c *entity.Color) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO colors (id, name, slug, hex, created_at)
		VALUES ($1, $2, $3, $4, $5)`, c.ID, c.Name, c.Slug, c.Hex, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el color %q ya existe", domain.ErrConflict, c.Slug)
		}
		return fmt.Errorf("insert color: %w", err)
	}
	return nil
}

func (r *ColorRepo) GetBySlug(ctx context.Context, slug string) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(ctx, `SELECT id::text, name, slug, hex, created_at FROM colors WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Hex, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return &c, nil
}

func (r *ColorRepo) List(ctx context.Context) ([]*entity.Color, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name, slug, hex, created_at FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var out []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Hex, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *ColorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete color: %w", err)
	}
	return nil
}

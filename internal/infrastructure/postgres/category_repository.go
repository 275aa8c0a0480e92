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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id::text, name, slug, description, COALESCE(father_id::text, ''), created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Slug repetido -> domain.ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, father_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, nullableID(c.FatherID), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la categoría %q ya existe", domain.ErrConflict, c.Slug)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetBySlug obtiene una categoría por slug. (nil, nil) si no existe.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return exists, nil
}

// List devuelve todas las categorías por orden de creación.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at, id`
	return r.list(ctx, "list categories", query)
}

// ListByFather devuelve los hijos directos de fatherID.
func (r *CategoryRepo) ListByFather(ctx context.Context, fatherID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE father_id = $1 ORDER BY created_at, id`
	return r.list(ctx, "list children", query, fatherID)
}

func (r *CategoryRepo) ListBySlugs(ctx context.Context, slugs []string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = ANY($1) ORDER BY created_at, id`
	return r.list(ctx, "list categories by slug", query, emptyIfNil(slugs))
}

func (r *CategoryRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`
	return r.list(ctx, "list categories by id", query, emptyIfNil(ids))
}

// Update reescribe todos los campos mutables. Categoría inexistente -> domain.ErrNotFound.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, father_id = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Description, nullableID(c.FatherID), c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la categoría %q ya existe", domain.ErrConflict, c.Slug)
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, c.ID)
	}
	return nil
}

// UpdateAll aplica Update a cada categoría; pensado para ejecutarse dentro de una tx.
func (r *CategoryRepo) UpdateAll(ctx context.Context, categories []*entity.Category) error {
	for _, c := range categories {
		if err := r.Update(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) DeleteAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = ANY($1::uuid[])`, ids); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}

func (r *CategoryRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.FatherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

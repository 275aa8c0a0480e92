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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect agrega los vínculos de product_categories respetando el orden de alta.
const productSelect = `
		SELECT p.id::text, p.name, p.slug, p.description, p.price, p.created_at, p.updated_at,
		       COALESCE(array_agg(pc.category_id::text ORDER BY pc.position)
		                FILTER (WHERE pc.category_id IS NOT NULL), '{}')
		FROM products p
		LEFT JOIN product_categories pc ON pc.product_id = p.id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el producto y sus vínculos a categorías en una sola sentencia.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		WITH inserted AS (
			INSERT INTO products (id, name, slug, description, price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		)
		INSERT INTO product_categories (product_id, category_id, position)
		SELECT inserted.id, c.id, c.pos
		FROM inserted CROSS JOIN unnest($8::uuid[]) WITH ORDINALITY AS c(id, pos)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.CreatedAt, p.UpdatedAt, emptyIfNil(p.CategoryIDs),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el producto %q ya existe", domain.ErrConflict, p.Slug)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySlug obtiene un producto por slug. (nil, nil) si no existe.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	query := productSelect + ` WHERE p.slug = $1 GROUP BY p.id`
	p, err := scanProduct(r.q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// List devuelve una página de productos por orden de creación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` GROUP BY p.id ORDER BY p.created_at, p.id LIMIT $1 OFFSET $2`
	return r.list(ctx, "list products", query, limit, offset)
}

// ListByCategories devuelve los productos vinculados a alguna de las categorías indicadas.
func (r *ProductRepo) ListByCategories(ctx context.Context, categoryIDs []string) ([]*entity.Product, error) {
	query := productSelect + `
		WHERE p.id IN (SELECT product_id FROM product_categories WHERE category_id = ANY($1::uuid[]))
		GROUP BY p.id ORDER BY p.created_at, p.id`
	return r.list(ctx, "list products by category", query, emptyIfNil(categoryIDs))
}

// UpdateCategories sincroniza product_categories con CategoryIDs de cada producto.
func (r *ProductRepo) UpdateCategories(ctx context.Context, products []*entity.Product) error {
	for _, p := range products {
		ids := emptyIfNil(p.CategoryIDs)
		if _, err := r.q.Exec(ctx, `
			DELETE FROM product_categories
			WHERE product_id = $1 AND NOT (category_id = ANY($2::uuid[]))`, p.ID, ids); err != nil {
			return fmt.Errorf("unlink product categories: %w", err)
		}
		if len(ids) == 0 {
			continue
		}
		if _, err := r.q.Exec(ctx, `
			INSERT INTO product_categories (product_id, category_id, position)
			SELECT $1, c.id, c.pos FROM unnest($2::uuid[]) WITH ORDINALITY AS c(id, pos)
			ON CONFLICT (product_id, category_id) DO UPDATE SET position = EXCLUDED.position`, p.ID, ids); err != nil {
			return fmt.Errorf("link product categories: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt, &p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

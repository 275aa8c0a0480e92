package repository

import (
	"context"

	"github.com/jhoicas/shop-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// ListByCategories devuelve los productos que referencian al menos una de las categorías.
	ListByCategories(ctx context.Context, categoryIDs []string) ([]*entity.Product, error)
	// UpdateCategories reemplaza el conjunto de categorías de cada producto.
	UpdateCategories(ctx context.Context, products []*entity.Product) error
}

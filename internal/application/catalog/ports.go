package catalog

import (
	"context"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, con repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CategoryCache guarda respuestas ya traducidas por slug. Get devuelve (nil, nil) si no hay entrada.
type CategoryCache interface {
	Get(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	Set(ctx context.Context, category *dto.CategoryResponse) error
	InvalidateAll(ctx context.Context) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*dto.CategoryResponse, error) { return nil, nil }
func (noopCache) Set(context.Context, *dto.CategoryResponse) error          { return nil }
func (noopCache) InvalidateAll(context.Context) error                       { return nil }

package repository

import (
	"context"

	"github.com/jhoicas/shop-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Get* devuelve (nil, nil) cuando no existe el registro.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*entity.Category, error)
	ListByFather(ctx context.Context, fatherID string) ([]*entity.Category, error)
	ListBySlugs(ctx context.Context, slugs []string) ([]*entity.Category, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	UpdateAll(ctx context.Context, categories []*entity.Category) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, ids []string) error
}

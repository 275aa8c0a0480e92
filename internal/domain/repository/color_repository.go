package repository

import (
	"context"

	"github.com/jhoicas/shop-api/internal/domain/entity"
)

// ColorRepository define el puerto de persistencia para Color (DIP).
type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	GetBySlug(ctx context.Context, slug string) (*entity.Color, error)
	List(ctx context.Context) ([]*entity.Color, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
	"github.com/jhoicas/shop-api/pkg/slug"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// ColorUseCase casos de uso CRUD para colores.
type ColorUseCase struct {
	repo repository.ColorRepository
}

// NewColorUseCase construye el caso de uso.
func NewColorUseCase(repo repository.ColorRepository) *ColorUseCase {
	return &ColorUseCase{repo: repo}
}

// Create crea un color. Hex se normaliza a mayúsculas (#RRGGBB).
func (uc *ColorUseCase) Create(ctx context.Context, in dto.ColorPayload) (*dto.ColorPayload, error) {
	name := strings.TrimSpace(in.Name)
	hex := strings.ToUpper(strings.TrimSpace(in.Hex))
	if name == "" || !hexColor.MatchString(hex) {
		return nil, fmt.Errorf("%w: name y hex (#RRGGBB) son requeridos", domain.ErrInvalidInput)
	}
	slugValue := strings.TrimSpace(in.Slug)
	if slugValue == "" {
		slugValue = slug.From(name)
	}
	if slugValue == "" {
		return nil, fmt.Errorf("%w: no se pudo derivar el slug de %q", domain.ErrInvalidInput, name)
	}
	existing, err := uc.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el color %q ya existe", domain.ErrConflict, slugValue)
	}
	color := &entity.Color{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slugValue,
		Hex:       hex,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, color); err != nil {
		return nil, err
	}
	return toColorPayload(color), nil
}

// GetBySlug obtiene un color por slug.
func (uc *ColorUseCase) GetBySlug(ctx context.Context, slugValue string) (*dto.ColorPayload, error) {
	color, err := uc.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, fmt.Errorf("%w: color %q", domain.ErrNotFound, slugValue)
	}
	return toColorPayload(color), nil
}

// List lista todos los colores.
func (uc *ColorUseCase) List(ctx context.Context) ([]dto.ColorPayload, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColorPayload, 0, len(list))
	for _, c := range list {
		out = append(out, *toColorPayload(c))
	}
	return out, nil
}

// Delete elimina un color por slug.
func (uc *ColorUseCase) Delete(ctx context.Context, slugValue string) error {
	color, err := uc.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		return err
	}
	if color == nil {
		return fmt.Errorf("%w: color %q", domain.ErrNotFound, slugValue)
	}
	return uc.repo.Delete(ctx, color.ID)
}

func toColorPayload(c *entity.Color) *dto.ColorPayload {
	return &dto.ColorPayload{Name: c.Name, Slug: c.Slug, Hex: c.Hex}
}

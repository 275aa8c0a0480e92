package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
	"github.com/jhoicas/shop-api/pkg/slug"
)

// ProductUseCase casos de uso para productos. Las categorías se reciben y devuelven por slug.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto asociado a las categorías indicadas.
// Slug duplicado -> domain.ErrConflict; categoría inexistente -> domain.ErrBadRequest.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
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
		return nil, fmt.Errorf("%w: el producto %q ya existe", domain.ErrConflict, slugValue)
	}

	wanted := uniqueNonEmpty(in.Categories)
	categories := []*entity.Category{}
	if len(wanted) > 0 {
		categories, err = uc.categoryRepo.ListBySlugs(ctx, wanted)
		if err != nil {
			return nil, err
		}
		if len(categories) != len(wanted) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBadRequest, missingSlugs(wanted, categories))
		}
	}
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slugValue,
		Description: in.Description,
		Price:       in.Price,
		CategoryIDs: ids,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, slugIndex(categories)), nil
}

// GetBySlug obtiene un producto por slug. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, slugValue string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, slugValue)
	}
	index, err := uc.categorySlugs(ctx, product.CategoryIDs)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, index), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, p := range list {
		ids = append(ids, p.CategoryIDs...)
	}
	index, err := uc.categorySlugs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, index))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// categorySlugs devuelve un índice id -> slug para los IDs dados (una sola consulta).
func (uc *ProductUseCase) categorySlugs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	categories, err := uc.categoryRepo.ListByIDs(ctx, uniqueNonEmpty(ids))
	if err != nil {
		return nil, err
	}
	return slugIndex(categories), nil
}

func slugIndex(categories []*entity.Category) map[string]string {
	index := make(map[string]string, len(categories))
	for _, c := range categories {
		index[c.ID] = c.Slug
	}
	return index
}

// uniqueNonEmpty quita vacíos y duplicados conservando el orden (slugs o IDs).
func uniqueNonEmpty(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func missingSlugs(wanted []string, found []*entity.Category) string {
	have := make(map[string]struct{}, len(found))
	for _, c := range found {
		have[c.Slug] = struct{}{}
	}
	var missing []string
	for _, s := range wanted {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return "categorías inexistentes: " + strings.Join(missing, ", ")
}

func toProductResponse(p *entity.Product, categorySlugs map[string]string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	categories := make([]string, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		if s, ok := categorySlugs[id]; ok {
			categories = append(categories, s)
		}
	}
	return &dto.ProductResponse{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Categories:  categories,
	}
}

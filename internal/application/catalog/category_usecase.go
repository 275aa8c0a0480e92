package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
	"github.com/jhoicas/shop-api/pkg/logger"
	"github.com/jhoicas/shop-api/pkg/slug"
)

// CategoryUseCase gestiona el árbol de categorías: alta con padre opcional, borrado en cascada
// (o promoción de los hijos a raíz) y desvinculación de los productos que la referencian.
// Las escrituras de varios pasos se ejecutan en una sola transacción vía TxRunner.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	txRunner     TxRunner
	cache        CategoryCache
	log          *logger.Logger

	// generation avanza en cada invalidación; GetBySlug no cachea lo leído antes de una escritura.
	generation atomic.Uint64
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	txRunner TxRunner,
	cache CategoryCache,
	log *logger.Logger,
) *CategoryUseCase {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		txRunner:     txRunner,
		cache:        cache,
		log:          log.Component("categories"),
	}
}

// List devuelve todas las categorías en el orden del repositorio. Nunca devuelve nil.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	all, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Category, len(all))
	children := make(map[string][]*entity.Category)
	for _, c := range all {
		byID[c.ID] = c
	}
	for _, c := range all {
		if c.HasFather() {
			children[c.FatherID] = append(children[c.FatherID], c)
		}
	}
	out := make([]dto.CategoryResponse, 0, len(all))
	for _, c := range all {
		node := &entity.CategoryNode{Category: c, Father: byID[c.FatherID], Children: children[c.ID]}
		out = append(out, *toCategoryResponse(node))
	}
	return out, nil
}

// GetBySlug obtiene una categoría por slug. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slugValue string) (*dto.CategoryResponse, error) {
	cached, err := uc.cache.Get(ctx, slugValue)
	if err != nil {
		uc.log.Warn().Err(err).Str("slug", slugValue).Msg("lectura de caché")
	}
	if cached != nil {
		return cached, nil
	}

	gen := uc.generation.Load()
	category, err := uc.categoryRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %q", domain.ErrNotFound, slugValue)
	}
	node, err := uc.loadNode(ctx, category)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(node)
	// Solo cubre escrituras de este proceso; las de otras instancias quedan acotadas por el TTL.
	if uc.generation.Load() != gen {
		uc.log.Debug().Str("slug", slugValue).Msg("caché omitida: el árbol cambió durante la lectura")
		return out, nil
	}
	if err := uc.cache.Set(ctx, out); err != nil {
		uc.log.Warn().Err(err).Str("slug", slugValue).Msg("escritura de caché")
	}
	return out, nil
}

// Create crea una categoría, colgándola de Father si se indica.
// Slug duplicado -> domain.ErrConflict (sin escrituras); padre inexistente -> domain.ErrBadRequest
// (la inserción previa se revierte con la transacción).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	slugValue := strings.TrimSpace(in.Slug)
	if slugValue == "" {
		slugValue = slug.From(name)
	}
	if slugValue == "" {
		return nil, fmt.Errorf("%w: no se pudo derivar el slug de %q", domain.ErrInvalidInput, name)
	}
	fatherSlug := ""
	if in.Father != nil {
		fatherSlug = strings.TrimSpace(*in.Father)
	}

	exists, err := uc.categoryRepo.ExistsBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: la categoría %q ya existe", domain.ErrConflict, slugValue)
	}
	if fatherSlug == slugValue {
		return nil, fmt.Errorf("%w: una categoría no puede ser su propio padre", domain.ErrBadRequest)
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slugValue,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var father *entity.Category

	err = uc.txRunner.Run(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository) error {
		if err := categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		if fatherSlug == "" {
			return nil
		}
		f, err := categoryRepo.GetBySlug(ctx, fatherSlug)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("%w: la categoría padre %q no existe", domain.ErrBadRequest, fatherSlug)
		}
		category.FatherID = f.ID
		category.UpdatedAt = time.Now()
		if err := categoryRepo.Update(ctx, category); err != nil {
			return err
		}
		father = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.log.Info().Str("slug", category.Slug).Str("father", fatherSlug).Msg("categoría creada")
	return toCategoryResponse(&entity.CategoryNode{Category: category, Father: father}), nil
}

// Update no está soportado todavía: siempre devuelve domain.ErrNotImplemented.
func (uc *CategoryUseCase) Update(ctx context.Context, slugValue string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	return nil, fmt.Errorf("%w: actualizar categoría %q", domain.ErrNotImplemented, slugValue)
}

// Delete elimina la categoría indicada por slug.
// Los hijos directos se borran (removeChildren) o pasan a ser raíz; los nietos no se visitan.
// Los productos que la referencian pierden el vínculo antes de borrar la categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, slugValue string, removeChildren bool) error {
	var deleted *entity.Category
	err := uc.txRunner.Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		category, err := categoryRepo.GetBySlug(ctx, slugValue)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: categoría %q", domain.ErrNotFound, slugValue)
		}
		if category.HasFather() {
			// El padre no guarda la lista de hijos: basta con borrar esta fila.
			uc.log.Debug().Str("slug", category.Slug).Str("father_id", category.FatherID).Msg("desvinculando del padre")
		}

		children, err := categoryRepo.ListByFather(ctx, category.ID)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			if removeChildren {
				ids := make([]string, 0, len(children))
				for _, child := range children {
					ids = append(ids, child.ID)
				}
				if err := categoryRepo.DeleteAll(ctx, ids); err != nil {
					return err
				}
			} else {
				now := time.Now()
				for _, child := range children {
					child.FatherID = ""
					child.UpdatedAt = now
				}
				if err := categoryRepo.UpdateAll(ctx, children); err != nil {
					return err
				}
			}
		}

		products, err := productRepo.ListByCategories(ctx, []string{category.ID})
		if err != nil {
			return err
		}
		if len(products) > 0 {
			for _, p := range products {
				p.RemoveCategory(category.ID)
			}
			if err := productRepo.UpdateCategories(ctx, products); err != nil {
				return err
			}
		}

		if err := categoryRepo.Delete(ctx, category.ID); err != nil {
			return err
		}
		deleted = category
		uc.log.Info().
			Str("slug", category.Slug).
			Int("children", len(children)).
			Bool("remove_children", removeChildren).
			Int("products_unlinked", len(products)).
			Msg("categoría eliminada")
		return nil
	})
	if err != nil {
		return err
	}
	if deleted != nil {
		uc.invalidate(ctx)
	}
	return nil
}

// loadNode resuelve padre e hijos directos de una categoría.
func (uc *CategoryUseCase) loadNode(ctx context.Context, category *entity.Category) (*entity.CategoryNode, error) {
	node := &entity.CategoryNode{Category: category}
	if category.HasFather() {
		father, err := uc.categoryRepo.GetByID(ctx, category.FatherID)
		if err != nil {
			return nil, err
		}
		node.Father = father
	}
	children, err := uc.categoryRepo.ListByFather(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

func (uc *CategoryUseCase) invalidate(ctx context.Context) {
	uc.generation.Add(1)
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("invalidación de caché")
	}
}

func toCategoryResponse(n *entity.CategoryNode) *dto.CategoryResponse {
	if n == nil || n.Category == nil {
		return nil
	}
	out := &dto.CategoryResponse{
		Name:        n.Name,
		Slug:        n.Slug,
		Description: n.Description,
	}
	if n.Father != nil {
		out.Father = n.Father.Slug
	}
	if n.HasChildren() {
		out.Children = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			out.Children = append(out.Children, child.Slug)
		}
	}
	return out
}

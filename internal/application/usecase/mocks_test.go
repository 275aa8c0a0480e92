package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/shop-api/internal/domain/entity"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategories(ctx context.Context, categoryIDs []string) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryIDs)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateCategories(ctx context.Context, products []*entity.Product) error {
	return m.Called(ctx, products).Error(0)
}

// MockCategoryRepository solo responde a las búsquedas por slug/ID; el resto no se usa aquí.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByFather(ctx context.Context, fatherID string) ([]*entity.Category, error) {
	args := m.Called(ctx, fatherID)
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListBySlugs(ctx context.Context, slugs []string) ([]*entity.Category, error) {
	args := m.Called(ctx, slugs)
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateAll(ctx context.Context, categories []*entity.Category) error {
	return m.Called(ctx, categories).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) DeleteAll(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

type MockColorRepository struct {
	mock.Mock
}

func (m *MockColorRepository) Create(ctx context.Context, color *entity.Color) error {
	return m.Called(ctx, color).Error(0)
}

func (m *MockColorRepository) GetBySlug(ctx context.Context, slug string) (*entity.Color, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Color), args.Error(1)
}

func (m *MockColorRepository) List(ctx context.Context) ([]*entity.Color, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Color), args.Error(1)
}

func (m *MockColorRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

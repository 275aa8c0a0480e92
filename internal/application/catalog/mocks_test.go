package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
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
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateAll(ctx context.Context, categories []*entity.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteAll(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
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
	args := m.Called(ctx, products)
	return args.Error(0)
}

// fakeTxRunner ejecuta fn con los mismos mocks; rolledBack registra si fn falló.
type fakeTxRunner struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	calls        int
	rolledBack   bool
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	f.calls++
	if err := fn(f.categoryRepo, f.productRepo); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type MockCategoryCache struct {
	mock.Mock
}

func (m *MockCategoryCache) Get(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryResponse), args.Error(1)
}

func (m *MockCategoryCache) Set(ctx context.Context, category *dto.CategoryResponse) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

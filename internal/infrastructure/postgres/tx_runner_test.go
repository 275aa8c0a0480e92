package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
	"github.com/jhoicas/shop-api/internal/domain/repository"
)

func TestTxRunner_Commit(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs("c-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := runner.Run(context.Background(), func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository) error {
		return categoryRepo.Delete(context.Background(), "c-1")
	})
	assert.NoError(t, err)
}

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO categories`).
		WithArgs("c-9", "", "orphan", "", nil, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository) error {
		if err := categoryRepo.Create(context.Background(), &entity.Category{ID: "c-9", Slug: "orphan"}); err != nil {
			return err
		}
		return domain.ErrBadRequest
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestTxRunner_BeginFalla(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)
	mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

	err := runner.Run(context.Background(), func(repository.CategoryRepository, repository.ProductRepository) error {
		t.Fatal("fn no debe ejecutarse")
		return nil
	})
	assert.ErrorContains(t, err, "begin transaction")
}

func TestEnsureSchema(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	assert.NoError(t, EnsureSchema(context.Background(), mock))
}

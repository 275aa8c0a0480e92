package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/internal/domain"
	"github.com/jhoicas/shop-api/internal/domain/entity"
)

func TestColorCreate(t *testing.T) {
	repo := new(MockColorRepository)
	uc := NewColorUseCase(repo)

	repo.On("GetBySlug", mock.Anything, "rojo-fuego").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Color) bool {
		return c.Hex == "#FF3300" && c.ID != ""
	})).Return(nil)

	out, err := uc.Create(context.Background(), dto.ColorPayload{Name: "Rojo fuego", Hex: "#ff3300"})
	require.NoError(t, err)
	assert.Equal(t, &dto.ColorPayload{Name: "Rojo fuego", Slug: "rojo-fuego", Hex: "#FF3300"}, out)
}

func TestColorCreate_HexInvalido(t *testing.T) {
	uc := NewColorUseCase(new(MockColorRepository))
	for _, hex := range []string{"", "FF3300", "#FF33", "#GG3300"} {
		_, err := uc.Create(context.Background(), dto.ColorPayload{Name: "Rojo", Hex: hex})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "hex %q", hex)
	}
}

func TestColorCreate_Duplicado(t *testing.T) {
	repo := new(MockColorRepository)
	uc := NewColorUseCase(repo)
	repo.On("GetBySlug", mock.Anything, "rojo").Return(&entity.Color{ID: "k-1", Slug: "rojo"}, nil)

	_, err := uc.Create(context.Background(), dto.ColorPayload{Name: "Rojo", Slug: "rojo", Hex: "#FF0000"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestColorListYDelete(t *testing.T) {
	repo := new(MockColorRepository)
	uc := NewColorUseCase(repo)
	repo.On("List", mock.Anything).Return([]*entity.Color{{ID: "k-1", Name: "Rojo", Slug: "rojo", Hex: "#FF0000"}}, nil)
	repo.On("GetBySlug", mock.Anything, "rojo").Return(&entity.Color{ID: "k-1", Slug: "rojo"}, nil)
	repo.On("GetBySlug", mock.Anything, "azul").Return(nil, nil)
	repo.On("Delete", mock.Anything, "k-1").Return(nil)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.ColorPayload{{Name: "Rojo", Slug: "rojo", Hex: "#FF0000"}}, list)

	require.NoError(t, uc.Delete(context.Background(), "rojo"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "azul"), domain.ErrNotFound)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/pkg/logger"
)

// CategoryService es lo que el handler necesita de catalog.CategoryUseCase.
type CategoryService interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, slug string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, slug string, removeChildren bool) error
}

// CategoryHandler maneja las peticiones HTTP del árbol de categorías.
type CategoryHandler struct {
	svc CategoryService
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría (opcionalmente hija de father)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (no implementado)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string                     true  "Slug de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Failure      501   {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("slug"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  removeChilds=true borra los hijos directos; si no, pasan a ser categorías raíz.
// @Tags         categories
// @Security     Bearer
// @Param        slug          path   string  true   "Slug de la categoría"
// @Param        removeChilds  query  bool    false  "Borrar hijos directos"  default(false)
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	removeChildren := c.QueryBool("removeChilds", false)
	if err := h.svc.Delete(c.UserContext(), c.Params("slug"), removeChildren); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/pkg/logger"
)

type ColorService interface {
	List(ctx context.Context) ([]dto.ColorPayload, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ColorPayload, error)
	Create(ctx context.Context, in dto.ColorPayload) (*dto.ColorPayload, error)
	Delete(ctx context.Context, slug string) error
}

type ColorHandler struct {
	svc ColorService
	log *logger.Logger
}

func NewColorHandler(svc ColorService, log *logger.Logger) *ColorHandler {
	return &ColorHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Listar colores
// @Tags         colors
// @Produce      json
// @Success      200  {array}  dto.ColorPayload
// @Router       /api/colors [get]
func (h *ColorHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener color por slug
// @Tags         colors
// @Produce      json
// @Param        slug  path  string  true  "Slug del color"
// @Success      200  {object}  dto.ColorPayload
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colors/{slug} [get]
func (h *ColorHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear color
// @Tags         colors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ColorPayload  true  "Nombre y hex (#RRGGBB)"
// @Success      201   {object}  dto.ColorPayload
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colors [post]
func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var in dto.ColorPayload
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar color
// @Tags         colors
// @Security     Bearer
// @Param        slug  path  string  true  "Slug del color"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colors/{slug} [delete]
func (h *ColorHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

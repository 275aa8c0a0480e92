package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/pkg/logger"
)

type ProductService interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error)
}

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	svc ProductService
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(svc ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.svc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shop-api/pkg/logger"
)

// RoleAdmin es el único rol autorizado a modificar el catálogo.
const RoleAdmin = "admin"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories CategoryService
	Products   ProductService
	Colors     ColorService
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con Bearer Token y rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin)}

	// Categories
	categoryHandler := NewCategoryHandler(deps.Categories, log.Component("http.categories"))
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:slug", categoryHandler.GetBySlug)
	categories.Post("/", append(admin, categoryHandler.Create)...)
	categories.Put("/:slug", append(admin, categoryHandler.Update)...)
	categories.Delete("/:slug", append(admin, categoryHandler.Delete)...)

	// Products
	productHandler := NewProductHandler(deps.Products, log.Component("http.products"))
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:slug", productHandler.GetBySlug)
	products.Post("/", append(admin, productHandler.Create)...)

	// Colors
	colorHandler := NewColorHandler(deps.Colors, log.Component("http.colors"))
	colors := api.Group("/colors")
	colors.Get("/", colorHandler.List)
	colors.Get("/:slug", colorHandler.GetBySlug)
	colors.Post("/", append(admin, colorHandler.Create)...)
	colors.Delete("/:slug", append(admin, colorHandler.Delete)...)
}

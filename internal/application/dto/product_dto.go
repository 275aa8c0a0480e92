package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Categories son slugs de categorías existentes.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Categories  []string        `json:"categories"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Categories  []string        `json:"categories"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Se asocia a varias categorías (muchos a muchos).
type Product struct {
	ID          string
	Name        string
	Slug        string // único en todo el catálogo
	Description string
	Price       decimal.Decimal
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCategory indica si el producto está asociado a la categoría.
func (p *Product) HasCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// RemoveCategory quita la categoría del conjunto del producto. Devuelve true si estaba presente.
func (p *Product) RemoveCategory(categoryID string) bool {
	kept := p.CategoryIDs[:0]
	removed := false
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	p.CategoryIDs = kept
	return removed
}

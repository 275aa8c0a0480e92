package entity

import "time"

// Color representa un color disponible para los productos (hex en formato #RRGGBB).
type Color struct {
	ID        string
	Name      string
	Slug      string
	Hex       string
	CreatedAt time.Time
}

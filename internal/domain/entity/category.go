package entity

import "time"

// Category representa una categoría de productos dentro del árbol del catálogo.
// Solo guarda la referencia al padre; los hijos se obtienen por consulta (ListByFather).
type Category struct {
	ID          string
	Name        string
	Slug        string // único en todo el catálogo
	Description string
	FatherID    string // vacío si es raíz
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasFather indica si la categoría cuelga de otra.
func (c *Category) HasFather() bool {
	return c.FatherID != ""
}

// CategoryNode es la vista de lectura de una categoría con su padre e hijos directos ya resueltos.
type CategoryNode struct {
	*Category
	Father   *Category
	Children []*Category
}

// HasChildren indica si el nodo tiene hijos directos. Lista nil y vacía son equivalentes.
func (n *CategoryNode) HasChildren() bool {
	return len(n.Children) > 0
}

package dto

// CreateCategoryRequest entrada para crear una categoría. Father es el slug del padre (opcional).
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Slug        string  `json:"slug" validate:"omitempty,max=120"`
	Description string  `json:"description"`
	Father      *string `json:"father"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (aún no soportado).
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Father      *string `json:"father"`
}

// CategoryResponse salida de una categoría. Padre e hijos se exponen por slug, nunca por ID.
type CategoryResponse struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Father      string   `json:"father,omitempty"`
	Children    []string `json:"children,omitempty"`
}

package dto

// ColorPayload entrada y salida de un color.
type ColorPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Hex  string `json:"hex"`
}

package dto

// PageResponse estado de una página de la consola: listado, catálogos de los selectores
// y el error de carga para el banner (vacío si la carga fue correcta).
type PageResponse[T any] struct {
	Items     []T                        `json:"items"`
	Catalogs  map[string][]CatalogOption `json:"catalogs,omitempty"`
	ListError string                     `json:"listError,omitempty"`
}

// WriteResponse resultado de un alta o una edición con el mensaje flash a mostrar.
type WriteResponse[T any] struct {
	Item  T      `json:"item"`
	Flash string `json:"flash"`
}

// FlashResponse resultado de una eliminación.
type FlashResponse struct {
	Flash string `json:"flash"`
}

// CatalogOption opción de un selector.
type CatalogOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Extra string `json:"extra,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. FieldErrors usa los nombres camelCase del formulario.
type ErrorResponse struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

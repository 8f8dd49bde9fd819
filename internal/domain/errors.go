package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrBusy         = errors.New("hay una operación en curso, espere a que termine")
	ErrBackend      = errors.New("error del backend")
)

// ValidationError falla de validación de presencia en un caso de uso.
// Field usa el nombre camelCase del formulario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye el error de validación de un campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError error normalizado del backend REST.
// FieldErrors mapea nombre de campo del formulario (camelCase) -> mensaje.
type APIError struct {
	Status      int // 0 si la petición no llegó a tener respuesta
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return "Error desconocido"
	}
	return e.Message
}

// Unwrap permite errors.Is(err, ErrBackend); un 404 además es ErrNotFound.
func (e *APIError) Unwrap() []error {
	if e.Status == 404 {
		return []error{ErrBackend, ErrNotFound}
	}
	return []error{ErrBackend}
}

// HasFieldErrors indica si el error trae errores por campo para mostrar en el formulario.
func (e *APIError) HasFieldErrors() bool {
	return len(e.FieldErrors) > 0
}

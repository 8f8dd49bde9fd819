package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// PersonaLookup búsqueda por identificación usada al salir del campo identificación
// en todos los formularios con persona. Nunca falla: sin coincidencia o ante error devuelve nil.
type PersonaLookup interface {
	FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona
}

// PersonaRepository operaciones sobre el recurso Persona que necesita la conciliación.
type PersonaRepository interface {
	PersonaLookup
	List(ctx context.Context) ([]entity.Persona, error)
	Delete(ctx context.Context, id string) error
}

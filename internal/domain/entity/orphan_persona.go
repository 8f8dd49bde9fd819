package entity

import "time"

// OrphanPersona persona creada en el paso 1 del alta cuya entidad no llegó a crearse
// y que tampoco se pudo eliminar en el momento. Queda pendiente de conciliación.
type OrphanPersona struct {
	ID             string
	PersonaID      string
	Identificacion string
	Recurso        string // endpoint de la entidad que falló, p. ej. /api/clientes
	Motivo         string // error de la escritura de la entidad
	Intentos       int
	UltimoError    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ResolvedAt     *time.Time
}

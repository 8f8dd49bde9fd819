package entity

import "github.com/shopspring/decimal"

// Empleado entidad respaldada por una Persona, con datos laborales y credenciales de acceso.
type Empleado struct {
	ID                    string
	PersonaID             string
	PersonaIdentificacion string
	PersonaNombre         string
	Identidad
	Salario          *decimal.Decimal // nil = no informado (en actualizaciones no se envía)
	FechaIngreso     string           // YYYY-MM-DD
	FechaNacimiento  string
	FechaSalida      string
	Username         string
	Password         string // solo escritura
	RolID            string
	RolNombre        string
	UsuarioAuditoria string
	Activo           bool
}

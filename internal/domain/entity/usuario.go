package entity

// Usuario cuenta de acceso al sistema, respaldada por una Persona.
type Usuario struct {
	ID            string
	PersonaID     string
	PersonaNombre string
	Identidad
	RolID                  string
	RolNombre              string
	Username               string
	Password               string // solo escritura
	RequiereCambioPassword *bool  // nil = no se envía
	UsuarioAuditoria       string
	Activo                 bool
}

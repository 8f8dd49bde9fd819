package entity

// Cliente entidad respaldada por una Persona más el tipo de cliente.
type Cliente struct {
	ID        string
	PersonaID string
	Identidad
	TipoClienteID     string
	TipoClienteNombre string
	UsuarioAuditoria  string
	Activo            bool
}

package entity

// Proveedor entidad respaldada por una Persona con nombre comercial y tipo de contribuyente.
type Proveedor struct {
	ID        string
	PersonaID string
	Identidad
	NombreComercial         string
	TipoContribuyenteID     string
	TipoContribuyenteNombre string
	UsuarioAuditoria        string
	Activo                  bool
}

package entity

// Rol de seguridad asignable a usuarios y empleados.
type Rol struct {
	ID               string
	Nombre           string
	Descripcion      string
	UsuarioAuditoria string
}

package entity

// Sucursal establecimiento de una empresa. Se elimina de forma lógica (Activo=false).
type Sucursal struct {
	ID               string
	Codigo           string
	Nombre           string
	Direccion        string
	Telefono         string
	UsuarioAuditoria string
	EmpresaID        string
	Activo           bool
}

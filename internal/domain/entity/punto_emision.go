package entity

// PuntoEmision punto de emisión de comprobantes de una sucursal. Se elimina de forma lógica.
type PuntoEmision struct {
	ID               string
	Codigo           string
	Descripcion      string
	SecuencialActual int
	UsuarioAuditoria string
	EmpresaID        string
	SucursalID       string
	Activo           bool
}

// SecuencialInicial valor por defecto del secuencial de un punto nuevo.
const SecuencialInicial = 1

package dto

// EmpresaRequest formulario de empresa.
type EmpresaRequest struct {
	RazonSocial           string `json:"razonSocial" validate:"required"`
	RUC                   string `json:"ruc" validate:"required"`
	NombreComercial       string `json:"nombreComercial"`
	DireccionMatriz       string `json:"direccionMatriz"`
	Telefono              string `json:"telefono"`
	CodigoEstablecimiento string `json:"codigoEstablecimiento"`
	ObligadoContabilidad  bool   `json:"obligadoContabilidad"`
	TipoContribuyenteID   string `json:"tipoContribuyenteId"`
	UsuarioAuditoria      string `json:"usuarioAuditoria"`
	Activo                *bool  `json:"activo"`
}

// EmpresaResponse empresa para la vista.
type EmpresaResponse struct {
	ID                    string `json:"id"`
	RazonSocial           string `json:"razonSocial"`
	NombreComercial       string `json:"nombreComercial"`
	RUC                   string `json:"ruc"`
	DireccionMatriz       string `json:"direccionMatriz"`
	Telefono              string `json:"telefono"`
	CodigoEstablecimiento string `json:"codigoEstablecimiento"`
	ObligadoContabilidad  bool   `json:"obligadoContabilidad"`
	TipoContribuyenteID   string `json:"tipoContribuyenteId"`
	UsuarioAuditoria      string `json:"usuarioAuditoria"`
	Activo                bool   `json:"activo"`
}

// SucursalRequest formulario de sucursal.
type SucursalRequest struct {
	Codigo           string `json:"codigo" validate:"required"`
	Nombre           string `json:"nombre" validate:"required"`
	EmpresaID        string `json:"empresaId" validate:"required"`
	Direccion        string `json:"direccion"`
	Telefono         string `json:"telefono"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	Activo           *bool  `json:"activo"`
}

type SucursalResponse struct {
	ID               string `json:"id"`
	Codigo           string `json:"codigo"`
	Nombre           string `json:"nombre"`
	Direccion        string `json:"direccion"`
	Telefono         string `json:"telefono"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	EmpresaID        string `json:"empresaId"`
	Activo           bool   `json:"activo"`
}

// PuntoEmisionRequest formulario de punto de emisión. SecuencialActual admite 0.
type PuntoEmisionRequest struct {
	Codigo           string `json:"codigo" validate:"required"`
	Descripcion      string `json:"descripcion" validate:"required"`
	SecuencialActual *int   `json:"secuencialActual" validate:"required"`
	EmpresaID        string `json:"empresaId" validate:"required"`
	SucursalID       string `json:"sucursalId" validate:"required"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	Activo           *bool  `json:"activo"`
}

type PuntoEmisionResponse struct {
	ID               string `json:"id"`
	Codigo           string `json:"codigo"`
	Descripcion      string `json:"descripcion"`
	SecuencialActual int    `json:"secuencialActual"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	EmpresaID        string `json:"empresaId"`
	SucursalID       string `json:"sucursalId"`
	Activo           bool   `json:"activo"`
}

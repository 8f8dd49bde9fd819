package dto

import "github.com/shopspring/decimal"

// ClienteRequest formulario de cliente: persona completa más el tipo de cliente.
type ClienteRequest struct {
	PersonaInput     `validate:"-"`
	TipoClienteID    string `json:"tipoClienteId" validate:"required"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	Activo           *bool  `json:"activo"`
}

type ClienteResponse struct {
	ID string `json:"id"`
	PersonaFields
	TipoClienteID     string `json:"tipoClienteId"`
	TipoClienteNombre string `json:"tipoClienteNombre"`
	UsuarioAuditoria  string `json:"usuarioAuditoria"`
	Activo            bool   `json:"activo"`
}

// EmpleadoRequest formulario de empleado con sus credenciales.
// Los campos de persona solo se exigen cuando no viene personaId.
type EmpleadoRequest struct {
	Salario          *decimal.Decimal `json:"salario"`
	FechaIngreso     string           `json:"fechaIngreso" validate:"required"`
	RolID            string           `json:"rolId" validate:"required"`
	Username         string           `json:"username" validate:"required"`
	Password         string           `json:"password" validate:"required"`
	FechaNacimiento  string           `json:"fechaNacimiento"`
	FechaSalida      string           `json:"fechaSalida"`
	PersonaInput     `validate:"-"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
	Activo           *bool  `json:"activo"`
}

type EmpleadoResponse struct {
	ID string `json:"id"`
	PersonaFields
	PersonaIdentificacion string           `json:"personaIdentificacion"`
	PersonaNombre         string           `json:"personaNombre"`
	Salario               *decimal.Decimal `json:"salario"`
	FechaIngreso          string           `json:"fechaIngreso"`
	FechaNacimiento       string           `json:"fechaNacimiento"`
	FechaSalida           string           `json:"fechaSalida"`
	Username              string           `json:"username"`
	RolID                 string           `json:"rolId"`
	RolNombre             string           `json:"rolNombre"`
	Activo                bool             `json:"activo"`
}

// UsuarioRequest formulario de usuario. En edición la contraseña es opcional.
type UsuarioRequest struct {
	RolID                  string `json:"rolId" validate:"required"`
	Username               string `json:"username" validate:"required"`
	Password               string `json:"password" validate:"required"`
	RequiereCambioPassword *bool  `json:"requiereCambioPassword"`
	PersonaInput           `validate:"-"`
	UsuarioAuditoria       string `json:"usuarioAuditoria"`
	Activo                 *bool  `json:"activo"`
}

type UsuarioResponse struct {
	ID string `json:"id"`
	PersonaFields
	PersonaNombre          string `json:"personaNombre"`
	RolID                  string `json:"rolId"`
	RolNombre              string `json:"rolNombre"`
	Username               string `json:"username"`
	RequiereCambioPassword bool   `json:"requiereCambioPassword"`
	Activo                 bool   `json:"activo"`
}

// ProveedorRequest formulario de proveedor.
type ProveedorRequest struct {
	PersonaInput        `validate:"-"`
	NombreComercial     string `json:"nombreComercial"`
	TipoContribuyenteID string `json:"tipoContribuyenteId" validate:"required"`
	UsuarioAuditoria    string `json:"usuarioAuditoria"`
	Activo              *bool  `json:"activo"`
}

type ProveedorResponse struct {
	ID string `json:"id"`
	PersonaFields
	NombreComercial         string `json:"nombreComercial"`
	TipoContribuyenteID     string `json:"tipoContribuyenteId"`
	TipoContribuyenteNombre string `json:"tipoContribuyenteNombre"`
	UsuarioAuditoria        string `json:"usuarioAuditoria"`
	Activo                  bool   `json:"activo"`
}

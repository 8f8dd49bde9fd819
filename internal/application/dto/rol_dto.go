package dto

import "github.com/shopspring/decimal"

// RolRequest formulario de rol.
type RolRequest struct {
	Nombre           string `json:"nombre" validate:"required"`
	Descripcion      string `json:"descripcion" validate:"required"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
}

type RolResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Descripcion      string `json:"descripcion"`
	UsuarioAuditoria string `json:"usuarioAuditoria"`
}

// TipoClienteRequest formulario de tipo de cliente. Descuento admite 0 pero no ausencia.
type TipoClienteRequest struct {
	Nombre           string           `json:"nombre" validate:"required"`
	Descuento        *decimal.Decimal `json:"descuento"`
	UsuarioAuditoria string           `json:"usuarioAuditoria"`
}

type TipoClienteResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Descuento        decimal.Decimal `json:"descuento"`
	UsuarioAuditoria string          `json:"usuarioAuditoria"`
}

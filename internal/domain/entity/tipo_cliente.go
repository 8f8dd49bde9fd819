package entity

import "github.com/shopspring/decimal"

// TipoCliente clasificación de clientes con su descuento.
type TipoCliente struct {
	ID               string
	Nombre           string
	Descuento        decimal.Decimal
	UsuarioAuditoria string
}

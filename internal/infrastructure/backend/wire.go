package backend

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// ── Representación snake_case del backend ────────────────────────────────────
// Campos puntero: nil = ausente en la respuesta, se usa el valor enviado como respaldo.

type personaWire struct {
	ID                 *flexID `json:"id"`
	Identificacion     *string `json:"identificacion"`
	TipoIdentificacion *string `json:"tipo_identificacion"`
	Nombre             *string `json:"nombre"`
	Apellido           *string `json:"apellido"`
	Direccion          *string `json:"direccion"`
	Telefono           *string `json:"telefono"`
	Ciudad             *string `json:"ciudad"`
	Email              *string `json:"email"`
	UsuarioAuditoria   *string `json:"usuario_auditoria"`
	Activo             *bool   `json:"activo"`
}

// identidad combina la persona de la respuesta con la enviada.
func (p *personaWire) identidad(fb entity.Identidad) entity.Identidad {
	if p == nil {
		return fb
	}
	return entity.Identidad{
		Identificacion:     pick(p.Identificacion, fb.Identificacion),
		TipoIdentificacion: pick(p.TipoIdentificacion, fb.TipoIdentificacion),
		Nombre:             pick(p.Nombre, fb.Nombre),
		Apellido:           pick(p.Apellido, fb.Apellido),
		Direccion:          pick(p.Direccion, fb.Direccion),
		Telefono:           pick(p.Telefono, fb.Telefono),
		Ciudad:             pick(p.Ciudad, fb.Ciudad),
		Email:              pick(p.Email, fb.Email),
	}
}

func (p *personaWire) toEntity() entity.Persona {
	return entity.Persona{
		ID:               pickID(p.ID, ""),
		Identidad:        p.identidad(entity.Identidad{}),
		UsuarioAuditoria: pick(p.UsuarioAuditoria, ""),
		Activo:           isActive(p.Activo),
	}
}

// nombreCompleto "nombre apellido" si la persona trae nombre; "" en otro caso.
func (p *personaWire) nombreCompleto() string {
	if p == nil || p.Nombre == nil || *p.Nombre == "" {
		return ""
	}
	return strings.TrimSpace(*p.Nombre + " " + pick(p.Apellido, ""))
}

type nombreWire struct {
	Nombre *string `json:"nombre"`
}

func pick(p *string, fb string) string {
	if p != nil {
		return *p
	}
	return fb
}

func pickID(p *flexID, fb string) string {
	if p != nil && *p != "" {
		return string(*p)
	}
	return fb
}

func pickBool(p *bool, fb bool) bool {
	if p != nil {
		return *p
	}
	return fb
}

// isActive aplica el filtro activo !== false.
func isActive(p *bool) bool {
	return p == nil || *p
}

// decimalValue serializa un decimal como literal numérico JSON.
func decimalValue(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// personaPayload cuerpo sanitizado de /api/personas.
func personaPayload(personaID string, in entity.Identidad, auditUser string, activo bool) payload {
	return sanitize(payload{
		"id":                  optional(personaID),
		"identificacion":      in.Identificacion,
		"tipo_identificacion": in.TipoIdentificacion,
		"nombre":              in.Nombre,
		"apellido":            in.Apellido,
		"direccion":           in.Direccion,
		"telefono":            in.Telefono,
		"ciudad":              in.Ciudad,
		"email":               in.Email,
		"usuario_auditoria":   auditUser,
		"activo":              activo,
	})
}

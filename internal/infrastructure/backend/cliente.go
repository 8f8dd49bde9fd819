package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const clientesPath = "/api/clientes"

var clienteFields = fieldNames{
	"identificacion":      "identificacion",
	"tipo_identificacion": "tipoIdentificacion",
	"nombre":              "nombre",
	"apellido":            "apellido",
	"direccion":           "direccion",
	"telefono":            "telefono",
	"ciudad":              "ciudad",
	"email":               "email",
	"usuario_auditoria":   "usuarioAuditoria",
	"persona_id":          "personaId",
	"tipo_cliente_id":     "tipoClienteId",
	"activo":              "activo",
}

type clienteWire struct {
	ID               *flexID      `json:"id"`
	PersonaID        *flexID      `json:"persona_id"`
	Persona          *personaWire `json:"persona"`
	TipoClienteID    *flexID      `json:"tipo_cliente_id"`
	TipoCliente      *nombreWire  `json:"tipo_cliente"`
	UsuarioAuditoria *string      `json:"usuario_auditoria"`
	Activo           *bool        `json:"activo"`
}

func (w clienteWire) toEntity(fb entity.Cliente) entity.Cliente {
	out := entity.Cliente{
		ID:                pickID(w.ID, fb.ID),
		PersonaID:         pickID(w.PersonaID, fb.PersonaID),
		Identidad:         w.Persona.identidad(fb.Identidad),
		TipoClienteID:     pickID(w.TipoClienteID, fb.TipoClienteID),
		TipoClienteNombre: fb.TipoClienteNombre,
		UsuarioAuditoria:  pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
		Activo:            pickBool(w.Activo, fb.Activo),
	}
	if w.Persona != nil {
		if out.PersonaID == "" {
			out.PersonaID = pickID(w.Persona.ID, "")
		}
		if w.Persona.UsuarioAuditoria != nil {
			out.UsuarioAuditoria = *w.Persona.UsuarioAuditoria
		}
		if w.Activo == nil && w.Persona.Activo != nil {
			out.Activo = *w.Persona.Activo
		}
	}
	if w.TipoCliente != nil && w.TipoCliente.Nombre != nil {
		out.TipoClienteNombre = *w.TipoCliente.Nombre
	}
	return out
}

// ClienteAdapter implementa repository.ClienteRepository: escribe la persona y luego el cliente.
type ClienteAdapter struct {
	base
	personas *PersonaGateway
	tipos    *TipoClienteAdapter
}

var _ repository.ClienteRepository = (*ClienteAdapter)(nil)

// NewClienteAdapter construye el adaptador. Los errores de validación de clientes llegan
// anidados (["body","persona","identificacion"]) y se resuelven por ruta completa.
func NewClienteAdapter(opts Options) *ClienteAdapter {
	return &ClienteAdapter{
		base:     newBase(opts, clienteFields, bodyPath, "clientes"),
		personas: opts.Personas,
		tipos:    NewTipoClienteAdapter(opts),
	}
}

// List clientes activos.
func (a *ClienteAdapter) List(ctx context.Context) ([]entity.Cliente, error) {
	rows, err := getList[clienteWire](ctx, a.client, clientesPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.Cliente, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		out = append(out, w.toEntity(entity.Cliente{Activo: true}))
	}
	return out, nil
}

func (a *ClienteAdapter) Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	return a.write(ctx, "", c)
}

func (a *ClienteAdapter) Update(ctx context.Context, id string, c entity.Cliente) (*entity.Cliente, error) {
	c.ID = id
	return a.write(ctx, id, c)
}

// write alta (id vacío) o actualización del cliente con su persona.
func (a *ClienteAdapter) write(ctx context.Context, id string, c entity.Cliente) (*entity.Cliente, error) {
	audit := a.audit(c.UsuarioAuditoria)
	var res clienteWire
	personaID, err := a.personas.upsert(ctx, personaWrite{
		PersonaID: c.PersonaID,
		Identidad: c.Identidad,
		AuditUser: audit,
		Activo:    c.Activo,
		Recurso:   clientesPath,
	}, a.norm, func(ctx context.Context, ref personaRef) error {
		body := sanitize(payload{
			"persona_id":        ref.value,
			"tipo_cliente_id":   c.TipoClienteID,
			"usuario_auditoria": audit,
		}, "persona_id")
		var err error
		if id == "" {
			err = a.client.Post(ctx, clientesPath, body, &res)
		} else {
			err = a.client.Put(ctx, resourcePath(clientesPath, id), body, &res)
		}
		return a.norm.normalize(err)
	})
	if err != nil {
		return nil, err
	}
	c.PersonaID = personaID
	c.UsuarioAuditoria = audit
	out := res.toEntity(c)
	return &out, nil
}

func (a *ClienteAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(clientesPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

func (a *ClienteAdapter) FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona {
	return a.personas.FindPersonaByIdentificacion(ctx, identificacion)
}

func (a *ClienteAdapter) TipoClienteCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.tipos.catalog(ctx)
}

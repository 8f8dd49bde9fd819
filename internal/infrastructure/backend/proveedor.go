package backend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const proveedoresPath = "/api/proveedores-persona"

var proveedorFields = fieldNames{
	"persona_id":            "personaId",
	"nombre_comercial":      "nombreComercial",
	"tipo_contribuyente_id": "tipoContribuyenteId",
}

type proveedorWire struct {
	ID                  *flexID      `json:"id"`
	PersonaID           *flexID      `json:"persona_id"`
	Persona             *personaWire `json:"persona"`
	NombreComercial     *string      `json:"nombre_comercial"`
	TipoContribuyenteID *flexID      `json:"tipo_contribuyente_id"`
	TipoContribuyente   *nombreWire  `json:"tipo_contribuyente"`
	UsuarioAuditoria    *string      `json:"usuario_auditoria"`
	Activo              *bool        `json:"activo"`
}

func (w proveedorWire) toEntity(fb entity.Proveedor) entity.Proveedor {
	out := entity.Proveedor{
		ID:                      pickID(w.ID, fb.ID),
		PersonaID:               pickID(w.PersonaID, fb.PersonaID),
		Identidad:               w.Persona.identidad(fb.Identidad),
		NombreComercial:         pick(w.NombreComercial, fb.NombreComercial),
		TipoContribuyenteID:     pickID(w.TipoContribuyenteID, fb.TipoContribuyenteID),
		TipoContribuyenteNombre: fb.TipoContribuyenteNombre,
		UsuarioAuditoria:        pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
		Activo:                  pickBool(w.Activo, fb.Activo),
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
	if w.TipoContribuyente != nil && w.TipoContribuyente.Nombre != nil {
		out.TipoContribuyenteNombre = *w.TipoContribuyente.Nombre
	}
	if out.TipoContribuyenteNombre == "" && out.TipoContribuyenteID != "" {
		out.TipoContribuyenteNombre = entity.TipoContribuyenteLabel(out.TipoContribuyenteID)
	}
	return out
}

// ProveedorAdapter implementa repository.ProveedorRepository sobre /api/proveedores-persona.
type ProveedorAdapter struct {
	base
	personas *PersonaGateway
}

var _ repository.ProveedorRepository = (*ProveedorAdapter)(nil)

// NewProveedorAdapter construye el adaptador.
func NewProveedorAdapter(opts Options) *ProveedorAdapter {
	return &ProveedorAdapter{
		base:     newBase(opts, proveedorFields, lastSegment, "proveedores"),
		personas: opts.Personas,
	}
}

// List proveedores activos unidos a su persona; el nombre del tipo sale del catálogo estático.
func (a *ProveedorAdapter) List(ctx context.Context) ([]entity.Proveedor, error) {
	var (
		rows     []proveedorWire
		personas map[string]*personaWire
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = getList[proveedorWire](gctx, a.client, proveedoresPath, nil)
		return a.norm.normalize(err)
	})
	g.Go(func() error {
		var err error
		personas, err = a.personas.activeByID(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entity.Proveedor, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		if w.Persona == nil {
			w.Persona = personas[pickID(w.PersonaID, "")]
		}
		out = append(out, w.toEntity(entity.Proveedor{Activo: true}))
	}
	return out, nil
}

func (a *ProveedorAdapter) Create(ctx context.Context, p entity.Proveedor) (*entity.Proveedor, error) {
	return a.write(ctx, "", p)
}

func (a *ProveedorAdapter) Update(ctx context.Context, id string, p entity.Proveedor) (*entity.Proveedor, error) {
	p.ID = id
	return a.write(ctx, id, p)
}

func (a *ProveedorAdapter) write(ctx context.Context, id string, p entity.Proveedor) (*entity.Proveedor, error) {
	audit := a.audit(p.UsuarioAuditoria)
	var res proveedorWire
	personaID, err := a.personas.upsert(ctx, personaWrite{
		PersonaID: p.PersonaID,
		Identidad: p.Identidad,
		AuditUser: audit,
		Activo:    p.Activo,
		Recurso:   proveedoresPath,
	}, a.norm, func(ctx context.Context, ref personaRef) error {
		body := sanitize(payload{
			"persona_id":            ref.value,
			"nombre_comercial":      p.NombreComercial,
			"tipo_contribuyente_id": p.TipoContribuyenteID,
			"usuario_auditoria":     audit,
		}, "persona_id")
		var err error
		if id == "" {
			err = a.client.Post(ctx, proveedoresPath, body, &res)
		} else {
			err = a.client.Put(ctx, resourcePath(proveedoresPath, id), body, &res)
		}
		return a.norm.normalize(err)
	})
	if err != nil {
		return nil, err
	}
	p.PersonaID = personaID
	p.UsuarioAuditoria = audit
	p.TipoContribuyenteNombre = entity.TipoContribuyenteLabel(p.TipoContribuyenteID)
	out := res.toEntity(p)
	return &out, nil
}

func (a *ProveedorAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(proveedoresPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

func (a *ProveedorAdapter) FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona {
	return a.personas.FindPersonaByIdentificacion(ctx, identificacion)
}

func (a *ProveedorAdapter) TipoContribuyenteCatalog(_ context.Context) ([]entity.CatalogOption, error) {
	return staticTiposContribuyente(), nil
}

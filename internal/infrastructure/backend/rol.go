package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const rolesPath = "/api/roles"

var rolFields = fieldNames{
	"nombre":            "nombre",
	"descripcion":       "descripcion",
	"usuario_auditoria": "usuarioAuditoria",
}

type rolWire struct {
	ID               *flexID `json:"id"`
	Nombre           *string `json:"nombre"`
	Descripcion      *string `json:"descripcion"`
	UsuarioAuditoria *string `json:"usuario_auditoria"`
	Activo           *bool   `json:"activo"`
}

func (w rolWire) toEntity(fb entity.Rol) entity.Rol {
	return entity.Rol{
		ID:               pickID(w.ID, fb.ID),
		Nombre:           pick(w.Nombre, fb.Nombre),
		Descripcion:      pick(w.Descripcion, fb.Descripcion),
		UsuarioAuditoria: pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
	}
}

// RolAdapter implementa repository.RolRepository sobre /api/roles.
type RolAdapter struct {
	base
}

var _ repository.RolRepository = (*RolAdapter)(nil)

// NewRolAdapter construye el adaptador.
func NewRolAdapter(opts Options) *RolAdapter {
	return &RolAdapter{base: newBase(opts, rolFields, lastSegment, "roles")}
}

func (a *RolAdapter) List(ctx context.Context) ([]entity.Rol, error) {
	rows, err := getList[rolWire](ctx, a.client, rolesPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.Rol, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toEntity(entity.Rol{}))
	}
	return out, nil
}

func (a *RolAdapter) body(r entity.Rol) payload {
	return payload{
		"nombre":            r.Nombre,
		"descripcion":       r.Descripcion,
		"usuario_auditoria": a.audit(r.UsuarioAuditoria),
	}
}

func (a *RolAdapter) Create(ctx context.Context, r entity.Rol) (*entity.Rol, error) {
	var res rolWire
	if err := a.client.Post(ctx, rolesPath, a.body(r), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(r)
	return &out, nil
}

func (a *RolAdapter) Update(ctx context.Context, id string, r entity.Rol) (*entity.Rol, error) {
	r.ID = id
	var res rolWire
	if err := a.client.Put(ctx, resourcePath(rolesPath, id), a.body(r), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(r)
	return &out, nil
}

func (a *RolAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(rolesPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

// catalog roles activos para los formularios de usuario y empleado.
func (a *RolAdapter) catalog(ctx context.Context) ([]entity.CatalogOption, error) {
	rows, err := getList[rolWire](ctx, a.client, rolesPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	opts := make([]entity.CatalogOption, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		opts = append(opts, entity.CatalogOption{Value: pickID(w.ID, ""), Label: pick(w.Nombre, "")})
	}
	return sortOptions(opts), nil
}

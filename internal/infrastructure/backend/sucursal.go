package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const sucursalesPath = "/api/sucursales"

var sucursalFields = fieldNames{
	"codigo":            "codigo",
	"nombre":            "nombre",
	"direccion":         "direccion",
	"telefono":          "telefono",
	"usuario_auditoria": "usuarioAuditoria",
	"empresa_id":        "empresaId",
	"activo":            "activo",
}

type sucursalWire struct {
	ID               *flexID `json:"id"`
	Codigo           *string `json:"codigo"`
	Nombre           *string `json:"nombre"`
	Direccion        *string `json:"direccion"`
	Telefono         *string `json:"telefono"`
	UsuarioAuditoria *string `json:"usuario_auditoria"`
	EmpresaID        *flexID `json:"empresa_id"`
	Activo           *bool   `json:"activo"`
}

func (w sucursalWire) toEntity(fb entity.Sucursal) entity.Sucursal {
	return entity.Sucursal{
		ID:               pickID(w.ID, fb.ID),
		Codigo:           pick(w.Codigo, fb.Codigo),
		Nombre:           pick(w.Nombre, fb.Nombre),
		Direccion:        pick(w.Direccion, fb.Direccion),
		Telefono:         pick(w.Telefono, fb.Telefono),
		UsuarioAuditoria: pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
		EmpresaID:        pickID(w.EmpresaID, fb.EmpresaID),
		Activo:           pickBool(w.Activo, fb.Activo),
	}
}

// SucursalAdapter implementa repository.SucursalRepository. La eliminación es lógica.
type SucursalAdapter struct {
	base
	empresas *EmpresaAdapter
}

var _ repository.SucursalRepository = (*SucursalAdapter)(nil)

// NewSucursalAdapter construye el adaptador.
func NewSucursalAdapter(opts Options) *SucursalAdapter {
	return &SucursalAdapter{
		base:     newBase(opts, sucursalFields, lastSegment, "sucursales"),
		empresas: NewEmpresaAdapter(opts),
	}
}

// List sucursales activas.
func (a *SucursalAdapter) List(ctx context.Context) ([]entity.Sucursal, error) {
	rows, err := getList[sucursalWire](ctx, a.client, sucursalesPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.Sucursal, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		out = append(out, w.toEntity(entity.Sucursal{Activo: true}))
	}
	return out, nil
}

func (a *SucursalAdapter) Create(ctx context.Context, s entity.Sucursal) (*entity.Sucursal, error) {
	body := payload{
		"codigo":            s.Codigo,
		"nombre":            s.Nombre,
		"direccion":         s.Direccion,
		"telefono":          s.Telefono,
		"usuario_auditoria": a.audit(s.UsuarioAuditoria),
		"empresa_id":        optional(s.EmpresaID),
		"activo":            s.Activo,
	}
	var res sucursalWire
	if err := a.client.Post(ctx, sucursalesPath, body, &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(s)
	return &out, nil
}

// Update no envía activo: la baja se hace solo con Delete.
func (a *SucursalAdapter) Update(ctx context.Context, id string, s entity.Sucursal) (*entity.Sucursal, error) {
	s.ID = id
	body := payload{
		"codigo":            s.Codigo,
		"nombre":            s.Nombre,
		"direccion":         s.Direccion,
		"telefono":          s.Telefono,
		"usuario_auditoria": a.audit(s.UsuarioAuditoria),
		"empresa_id":        optional(s.EmpresaID),
	}
	var res sucursalWire
	if err := a.client.Put(ctx, resourcePath(sucursalesPath, id), body, &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(s)
	return &out, nil
}

// Delete baja lógica: PUT {activo:false}.
func (a *SucursalAdapter) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, a.base, sucursalesPath, id)
}

// EmpresaCatalog etiqueta nombre comercial, razón social o id.
func (a *SucursalAdapter) EmpresaCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.empresas.catalog(ctx, func(e entity.Empresa) string {
		return firstNonEmpty(e.NombreComercial, e.RazonSocial, e.ID)
	})
}

// catalog sucursales activas "codigo - nombre", filtradas por empresa si empresaID no está vacío.
func (a *SucursalAdapter) catalog(ctx context.Context, empresaID string) ([]entity.CatalogOption, error) {
	sucursales, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]entity.CatalogOption, 0, len(sucursales))
	for _, s := range sucursales {
		if empresaID != "" && s.EmpresaID != empresaID {
			continue
		}
		opts = append(opts, entity.CatalogOption{Value: s.ID, Label: s.Codigo + " - " + s.Nombre})
	}
	return sortOptions(opts), nil
}

func softDelete(ctx context.Context, b base, path, id string) error {
	body := payload{"activo": false, "usuario_auditoria": b.auditUser}
	if err := b.client.Put(ctx, resourcePath(path, id), body, nil); err != nil {
		return b.norm.normalize(err)
	}
	return nil
}

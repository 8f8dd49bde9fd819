package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const puntosEmisionPath = "/api/puntos-emision"

var puntoEmisionFields = fieldNames{
	"codigo":            "codigo",
	"descripcion":       "descripcion",
	"secuencial_actual": "secuencialActual",
	"usuario_auditoria": "usuarioAuditoria",
	"empresa_id":        "empresaId",
	"sucursal_id":       "sucursalId",
}

type puntoEmisionWire struct {
	ID               *flexID  `json:"id"`
	Codigo           *string  `json:"codigo"`
	Descripcion      *string  `json:"descripcion"`
	SecuencialActual *flexInt `json:"secuencial_actual"`
	UsuarioAuditoria *string  `json:"usuario_auditoria"`
	EmpresaID        *flexID  `json:"empresa_id"`
	SucursalID       *flexID  `json:"sucursal_id"`
	Activo           *bool    `json:"activo"`
}

func (w puntoEmisionWire) toEntity(fb entity.PuntoEmision) entity.PuntoEmision {
	sec := fb.SecuencialActual
	if w.SecuencialActual != nil {
		sec = int(*w.SecuencialActual)
	}
	return entity.PuntoEmision{
		ID:               pickID(w.ID, fb.ID),
		Codigo:           pick(w.Codigo, fb.Codigo),
		Descripcion:      pick(w.Descripcion, fb.Descripcion),
		SecuencialActual: sec,
		UsuarioAuditoria: pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
		EmpresaID:        pickID(w.EmpresaID, fb.EmpresaID),
		SucursalID:       pickID(w.SucursalID, fb.SucursalID),
		Activo:           pickBool(w.Activo, fb.Activo),
	}
}

// PuntoEmisionAdapter implementa repository.PuntoEmisionRepository. La eliminación es lógica.
type PuntoEmisionAdapter struct {
	base
	empresas   *EmpresaAdapter
	sucursales *SucursalAdapter
}

var _ repository.PuntoEmisionRepository = (*PuntoEmisionAdapter)(nil)

// NewPuntoEmisionAdapter construye el adaptador.
func NewPuntoEmisionAdapter(opts Options) *PuntoEmisionAdapter {
	return &PuntoEmisionAdapter{
		base:       newBase(opts, puntoEmisionFields, lastSegment, "puntos_emision"),
		empresas:   NewEmpresaAdapter(opts),
		sucursales: NewSucursalAdapter(opts),
	}
}

// List puntos de emisión activos.
func (a *PuntoEmisionAdapter) List(ctx context.Context) ([]entity.PuntoEmision, error) {
	rows, err := getList[puntoEmisionWire](ctx, a.client, puntosEmisionPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.PuntoEmision, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		out = append(out, w.toEntity(entity.PuntoEmision{Activo: true}))
	}
	return out, nil
}

func (a *PuntoEmisionAdapter) body(p entity.PuntoEmision) payload {
	return payload{
		"codigo":            p.Codigo,
		"descripcion":       p.Descripcion,
		"secuencial_actual": p.SecuencialActual,
		"usuario_auditoria": a.audit(p.UsuarioAuditoria),
		"empresa_id":        optional(p.EmpresaID),
		"sucursal_id":       optional(p.SucursalID),
	}
}

func (a *PuntoEmisionAdapter) Create(ctx context.Context, p entity.PuntoEmision) (*entity.PuntoEmision, error) {
	body := a.body(p)
	body["activo"] = p.Activo
	var res puntoEmisionWire
	if err := a.client.Post(ctx, puntosEmisionPath, body, &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(p)
	return &out, nil
}

// Update no envía activo: la baja se hace solo con Delete.
func (a *PuntoEmisionAdapter) Update(ctx context.Context, id string, p entity.PuntoEmision) (*entity.PuntoEmision, error) {
	p.ID = id
	var res puntoEmisionWire
	if err := a.client.Put(ctx, resourcePath(puntosEmisionPath, id), a.body(p), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(p)
	return &out, nil
}

// Delete baja lógica: PUT {activo:false}.
func (a *PuntoEmisionAdapter) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, a.base, puntosEmisionPath, id)
}

// EmpresaCatalog etiqueta razón social, nombre comercial o id.
func (a *PuntoEmisionAdapter) EmpresaCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.empresas.catalog(ctx, func(e entity.Empresa) string {
		return firstNonEmpty(e.RazonSocial, e.NombreComercial, e.ID)
	})
}

func (a *PuntoEmisionAdapter) SucursalCatalog(ctx context.Context, empresaID string) ([]entity.CatalogOption, error) {
	return a.sucursales.catalog(ctx, empresaID)
}

package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const empresaPath = "/api/empresa"

var empresaFields = fieldNames{
	"razon_social":           "razonSocial",
	"nombre_comercial":       "nombreComercial",
	"ruc":                    "ruc",
	"direccion_matriz":       "direccionMatriz",
	"telefono":               "telefono",
	"codigo_establecimiento": "codigoEstablecimiento",
	"obligado_contabilidad":  "obligadoContabilidad",
	"tipo_contribuyente_id":  "tipoContribuyenteId",
	"usuario_auditoria":      "usuarioAuditoria",
}

type empresaWire struct {
	ID                    *flexID `json:"id"`
	RazonSocial           *string `json:"razon_social"`
	NombreComercial       *string `json:"nombre_comercial"`
	RUC                   *string `json:"ruc"`
	DireccionMatriz       *string `json:"direccion_matriz"`
	Telefono              *string `json:"telefono"`
	CodigoEstablecimiento *string `json:"codigo_establecimiento"`
	ObligadoContabilidad  *bool   `json:"obligado_contabilidad"`
	TipoContribuyenteID   *flexID `json:"tipo_contribuyente_id"`
	UsuarioAuditoria      *string `json:"usuario_auditoria"`
	Activo                *bool   `json:"activo"`
}

func (w empresaWire) toEntity(fb entity.Empresa) entity.Empresa {
	return entity.Empresa{
		ID:                    pickID(w.ID, fb.ID),
		RazonSocial:           pick(w.RazonSocial, fb.RazonSocial),
		NombreComercial:       pick(w.NombreComercial, fb.NombreComercial),
		RUC:                   pick(w.RUC, fb.RUC),
		DireccionMatriz:       pick(w.DireccionMatriz, fb.DireccionMatriz),
		Telefono:              pick(w.Telefono, fb.Telefono),
		CodigoEstablecimiento: pick(w.CodigoEstablecimiento, fb.CodigoEstablecimiento),
		ObligadoContabilidad:  pickBool(w.ObligadoContabilidad, fb.ObligadoContabilidad),
		TipoContribuyenteID:   pickID(w.TipoContribuyenteID, fb.TipoContribuyenteID),
		UsuarioAuditoria:      pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
		Activo:                pickBool(w.Activo, fb.Activo),
	}
}

// EmpresaAdapter implementa repository.EmpresaRepository sobre /api/empresa.
type EmpresaAdapter struct {
	base
}

var _ repository.EmpresaRepository = (*EmpresaAdapter)(nil)

// NewEmpresaAdapter construye el adaptador.
func NewEmpresaAdapter(opts Options) *EmpresaAdapter {
	return &EmpresaAdapter{base: newBase(opts, empresaFields, lastSegment, "empresas")}
}

func (a *EmpresaAdapter) body(e entity.Empresa) payload {
	return payload{
		"razon_social":           e.RazonSocial,
		"nombre_comercial":       e.NombreComercial,
		"ruc":                    e.RUC,
		"direccion_matriz":       e.DireccionMatriz,
		"telefono":               e.Telefono,
		"codigo_establecimiento": e.CodigoEstablecimiento,
		"obligado_contabilidad":  e.ObligadoContabilidad,
		"tipo_contribuyente_id":  optional(e.TipoContribuyenteID),
		"usuario_auditoria":      a.audit(e.UsuarioAuditoria),
		"activo":                 e.Activo,
	}
}

// List devuelve todas las empresas (el backend no las elimina de forma lógica).
func (a *EmpresaAdapter) List(ctx context.Context) ([]entity.Empresa, error) {
	rows, err := getList[empresaWire](ctx, a.client, empresaPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.Empresa, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toEntity(entity.Empresa{Activo: true}))
	}
	return out, nil
}

func (a *EmpresaAdapter) Create(ctx context.Context, e entity.Empresa) (*entity.Empresa, error) {
	var res empresaWire
	if err := a.client.Post(ctx, empresaPath, a.body(e), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(e)
	return &out, nil
}

func (a *EmpresaAdapter) Update(ctx context.Context, id string, e entity.Empresa) (*entity.Empresa, error) {
	e.ID = id
	var res empresaWire
	if err := a.client.Put(ctx, resourcePath(empresaPath, id), a.body(e), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(e)
	return &out, nil
}

func (a *EmpresaAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(empresaPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

// TipoContribuyenteCatalog catálogo estático 01..05.
func (a *EmpresaAdapter) TipoContribuyenteCatalog(_ context.Context) ([]entity.CatalogOption, error) {
	return staticTiposContribuyente(), nil
}

// catalog opciones de empresa; label elige la etiqueta según el formulario.
func (a *EmpresaAdapter) catalog(ctx context.Context, label func(entity.Empresa) string) ([]entity.CatalogOption, error) {
	empresas, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]entity.CatalogOption, 0, len(empresas))
	for _, e := range empresas {
		opts = append(opts, entity.CatalogOption{Value: e.ID, Label: label(e)})
	}
	return sortOptions(opts), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

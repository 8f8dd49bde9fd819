package backend

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const tiposClientePath = "/api/tipos-cliente"

var tipoClienteFields = fieldNames{
	"nombre":            "nombre",
	"descuento":         "descuento",
	"usuario_auditoria": "usuarioAuditoria",
}

type tipoClienteWire struct {
	ID               *flexID          `json:"id"`
	Nombre           *string          `json:"nombre"`
	Descuento        *decimal.Decimal `json:"descuento"`
	UsuarioAuditoria *string          `json:"usuario_auditoria"`
}

func (w tipoClienteWire) toEntity(fb entity.TipoCliente) entity.TipoCliente {
	desc := fb.Descuento
	if w.Descuento != nil {
		desc = *w.Descuento
	}
	return entity.TipoCliente{
		ID:               pickID(w.ID, fb.ID),
		Nombre:           pick(w.Nombre, fb.Nombre),
		Descuento:        desc,
		UsuarioAuditoria: pick(w.UsuarioAuditoria, fb.UsuarioAuditoria),
	}
}

// TipoClienteAdapter implementa repository.TipoClienteRepository sobre /api/tipos-cliente.
type TipoClienteAdapter struct {
	base
}

var _ repository.TipoClienteRepository = (*TipoClienteAdapter)(nil)

// NewTipoClienteAdapter construye el adaptador.
func NewTipoClienteAdapter(opts Options) *TipoClienteAdapter {
	return &TipoClienteAdapter{base: newBase(opts, tipoClienteFields, lastSegment, "tipos_cliente")}
}

func (a *TipoClienteAdapter) List(ctx context.Context) ([]entity.TipoCliente, error) {
	rows, err := getList[tipoClienteWire](ctx, a.client, tiposClientePath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.TipoCliente, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toEntity(entity.TipoCliente{}))
	}
	return out, nil
}

func (a *TipoClienteAdapter) body(t entity.TipoCliente) payload {
	return payload{
		"nombre":            t.Nombre,
		"descuento":         decimalValue(t.Descuento),
		"usuario_auditoria": a.audit(t.UsuarioAuditoria),
	}
}

func (a *TipoClienteAdapter) Create(ctx context.Context, t entity.TipoCliente) (*entity.TipoCliente, error) {
	var res tipoClienteWire
	if err := a.client.Post(ctx, tiposClientePath, a.body(t), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(t)
	return &out, nil
}

func (a *TipoClienteAdapter) Update(ctx context.Context, id string, t entity.TipoCliente) (*entity.TipoCliente, error) {
	t.ID = id
	var res tipoClienteWire
	if err := a.client.Put(ctx, resourcePath(tiposClientePath, id), a.body(t), &res); err != nil {
		return nil, a.norm.normalize(err)
	}
	out := res.toEntity(t)
	return &out, nil
}

func (a *TipoClienteAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(tiposClientePath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

// catalog tipos de cliente para el formulario de cliente.
func (a *TipoClienteAdapter) catalog(ctx context.Context) ([]entity.CatalogOption, error) {
	tipos, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]entity.CatalogOption, 0, len(tipos))
	for _, t := range tipos {
		opts = append(opts, entity.CatalogOption{Value: t.ID, Label: t.Nombre})
	}
	return sortOptions(opts), nil
}

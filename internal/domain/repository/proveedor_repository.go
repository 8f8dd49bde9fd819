package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// ProveedorRepository puerto para Proveedor (endpoint /api/proveedores-persona).
type ProveedorRepository interface {
	PersonaLookup
	List(ctx context.Context) ([]entity.Proveedor, error)
	Create(ctx context.Context, p entity.Proveedor) (*entity.Proveedor, error)
	Update(ctx context.Context, id string, p entity.Proveedor) (*entity.Proveedor, error)
	Delete(ctx context.Context, id string) error
	TipoContribuyenteCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

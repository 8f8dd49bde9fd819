package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// PuntoEmisionRepository puerto para PuntoEmision. Delete es lógico (activo=false).
type PuntoEmisionRepository interface {
	List(ctx context.Context) ([]entity.PuntoEmision, error)
	Create(ctx context.Context, p entity.PuntoEmision) (*entity.PuntoEmision, error)
	Update(ctx context.Context, id string, p entity.PuntoEmision) (*entity.PuntoEmision, error)
	Delete(ctx context.Context, id string) error
	EmpresaCatalog(ctx context.Context) ([]entity.CatalogOption, error)
	// SucursalCatalog filtra por empresa cuando empresaID no está vacío.
	SucursalCatalog(ctx context.Context, empresaID string) ([]entity.CatalogOption, error)
}

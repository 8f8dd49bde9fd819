package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// SucursalRepository puerto para Sucursal. Delete es lógico (activo=false).
type SucursalRepository interface {
	List(ctx context.Context) ([]entity.Sucursal, error)
	Create(ctx context.Context, s entity.Sucursal) (*entity.Sucursal, error)
	Update(ctx context.Context, id string, s entity.Sucursal) (*entity.Sucursal, error)
	Delete(ctx context.Context, id string) error
	EmpresaCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

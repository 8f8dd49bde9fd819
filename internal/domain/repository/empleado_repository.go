package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// EmpleadoRepository puerto para Empleado.
type EmpleadoRepository interface {
	PersonaLookup
	List(ctx context.Context) ([]entity.Empleado, error)
	Create(ctx context.Context, e entity.Empleado) (*entity.Empleado, error)
	Update(ctx context.Context, id string, e entity.Empleado) (*entity.Empleado, error)
	Delete(ctx context.Context, id string) error
	RolCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

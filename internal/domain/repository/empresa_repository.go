package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// EmpresaRepository define el puerto para Empresa (DIP).
// La implementación vive en infrastructure/backend.
type EmpresaRepository interface {
	List(ctx context.Context) ([]entity.Empresa, error)
	Create(ctx context.Context, e entity.Empresa) (*entity.Empresa, error)
	Update(ctx context.Context, id string, e entity.Empresa) (*entity.Empresa, error)
	Delete(ctx context.Context, id string) error
	TipoContribuyenteCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

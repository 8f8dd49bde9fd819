package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// RolRepository puerto para Rol.
type RolRepository interface {
	List(ctx context.Context) ([]entity.Rol, error)
	Create(ctx context.Context, r entity.Rol) (*entity.Rol, error)
	Update(ctx context.Context, id string, r entity.Rol) (*entity.Rol, error)
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// TipoClienteRepository puerto para TipoCliente.
type TipoClienteRepository interface {
	List(ctx context.Context) ([]entity.TipoCliente, error)
	Create(ctx context.Context, t entity.TipoCliente) (*entity.TipoCliente, error)
	Update(ctx context.Context, id string, t entity.TipoCliente) (*entity.TipoCliente, error)
	Delete(ctx context.Context, id string) error
}

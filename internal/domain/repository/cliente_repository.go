package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// ClienteRepository puerto para Cliente (crea o actualiza su Persona antes de escribir el cliente).
type ClienteRepository interface {
	PersonaLookup
	List(ctx context.Context) ([]entity.Cliente, error)
	Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error)
	Update(ctx context.Context, id string, c entity.Cliente) (*entity.Cliente, error)
	Delete(ctx context.Context, id string) error
	TipoClienteCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

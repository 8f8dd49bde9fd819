package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// UsuarioRepository puerto para Usuario.
type UsuarioRepository interface {
	PersonaLookup
	List(ctx context.Context) ([]entity.Usuario, error)
	Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error)
	Update(ctx context.Context, id string, u entity.Usuario) (*entity.Usuario, error)
	Delete(ctx context.Context, id string) error
	RolCatalog(ctx context.Context) ([]entity.CatalogOption, error)
	PersonaCatalog(ctx context.Context) ([]entity.CatalogOption, error)
}

package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// RolUseCase casos de uso de roles.
type RolUseCase struct {
	repo      repository.RolRepository
	auditUser string
}

func NewRolUseCase(repo repository.RolRepository, auditUser string) *RolUseCase {
	return &RolUseCase{repo: repo, auditUser: auditUser}
}

func (uc *RolUseCase) List(ctx context.Context) ([]dto.RolResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToRolResponse), nil
}

// Create exige nombre y descripción.
func (uc *RolUseCase) Create(ctx context.Context, in dto.RolRequest) (*dto.RolResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToRolResponse(r), nil
}

func (uc *RolUseCase) Update(ctx context.Context, id string, in dto.RolRequest) (*dto.RolResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToRolResponse(r), nil
}

func (uc *RolUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RolUseCase) toEntity(in dto.RolRequest) entity.Rol {
	return entity.Rol{
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
	}
}

func entityToRolResponse(r *entity.Rol) *dto.RolResponse {
	if r == nil {
		return nil
	}
	return &dto.RolResponse{
		ID:               r.ID,
		Nombre:           r.Nombre,
		Descripcion:      r.Descripcion,
		UsuarioAuditoria: r.UsuarioAuditoria,
	}
}

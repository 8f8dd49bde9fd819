package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// TipoClienteUseCase casos de uso de tipos de cliente.
type TipoClienteUseCase struct {
	repo      repository.TipoClienteRepository
	auditUser string
}

func NewTipoClienteUseCase(repo repository.TipoClienteRepository, auditUser string) *TipoClienteUseCase {
	return &TipoClienteUseCase{repo: repo, auditUser: auditUser}
}

func (uc *TipoClienteUseCase) List(ctx context.Context) ([]dto.TipoClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToTipoClienteResponse), nil
}

// Create exige nombre y descuento (un descuento 0 es válido).
func (uc *TipoClienteUseCase) Create(ctx context.Context, in dto.TipoClienteRequest) (*dto.TipoClienteResponse, error) {
	if err := validateTipoCliente(in); err != nil {
		return nil, err
	}
	t, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToTipoClienteResponse(t), nil
}

func (uc *TipoClienteUseCase) Update(ctx context.Context, id string, in dto.TipoClienteRequest) (*dto.TipoClienteResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateTipoCliente(in); err != nil {
		return nil, err
	}
	t, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToTipoClienteResponse(t), nil
}

func (uc *TipoClienteUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func validateTipoCliente(in dto.TipoClienteRequest) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Descuento == nil {
		return required("descuento")
	}
	return nil
}

func (uc *TipoClienteUseCase) toEntity(in dto.TipoClienteRequest) entity.TipoCliente {
	t := entity.TipoCliente{
		Nombre:           in.Nombre,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
	}
	if in.Descuento != nil {
		t.Descuento = *in.Descuento
	}
	return t
}

func entityToTipoClienteResponse(t *entity.TipoCliente) *dto.TipoClienteResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoClienteResponse{
		ID:               t.ID,
		Nombre:           t.Nombre,
		Descuento:        t.Descuento,
		UsuarioAuditoria: t.UsuarioAuditoria,
	}
}

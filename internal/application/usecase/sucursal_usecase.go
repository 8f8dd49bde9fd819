package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// SucursalUseCase casos de uso de sucursales.
type SucursalUseCase struct {
	repo      repository.SucursalRepository
	auditUser string
}

func NewSucursalUseCase(repo repository.SucursalRepository, auditUser string) *SucursalUseCase {
	return &SucursalUseCase{repo: repo, auditUser: auditUser}
}

// List lista las sucursales activas.
func (uc *SucursalUseCase) List(ctx context.Context) ([]dto.SucursalResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToSucursalResponse), nil
}

// Create exige código, nombre y empresa.
func (uc *SucursalUseCase) Create(ctx context.Context, in dto.SucursalRequest) (*dto.SucursalResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToSucursalResponse(s), nil
}

func (uc *SucursalUseCase) Update(ctx context.Context, id string, in dto.SucursalRequest) (*dto.SucursalResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToSucursalResponse(s), nil
}

// Delete desactiva la sucursal (eliminación lógica).
func (uc *SucursalUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SucursalUseCase) EmpresaCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.EmpresaCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *SucursalUseCase) toEntity(in dto.SucursalRequest) entity.Sucursal {
	return entity.Sucursal{
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Direccion:        in.Direccion,
		Telefono:         in.Telefono,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
		EmpresaID:        in.EmpresaID,
		Activo:           boolOr(in.Activo, true),
	}
}

func entityToSucursalResponse(s *entity.Sucursal) *dto.SucursalResponse {
	if s == nil {
		return nil
	}
	return &dto.SucursalResponse{
		ID:               s.ID,
		Codigo:           s.Codigo,
		Nombre:           s.Nombre,
		Direccion:        s.Direccion,
		Telefono:         s.Telefono,
		UsuarioAuditoria: s.UsuarioAuditoria,
		EmpresaID:        s.EmpresaID,
		Activo:           s.Activo,
	}
}

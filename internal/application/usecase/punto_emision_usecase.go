package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// PuntoEmisionUseCase casos de uso de puntos de emisión.
type PuntoEmisionUseCase struct {
	repo      repository.PuntoEmisionRepository
	auditUser string
}

func NewPuntoEmisionUseCase(repo repository.PuntoEmisionRepository, auditUser string) *PuntoEmisionUseCase {
	return &PuntoEmisionUseCase{repo: repo, auditUser: auditUser}
}

func (uc *PuntoEmisionUseCase) List(ctx context.Context) ([]dto.PuntoEmisionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToPuntoEmisionResponse), nil
}

// Create exige código, descripción, secuencial (0 es válido), empresa y sucursal.
func (uc *PuntoEmisionUseCase) Create(ctx context.Context, in dto.PuntoEmisionRequest) (*dto.PuntoEmisionResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToPuntoEmisionResponse(p), nil
}

func (uc *PuntoEmisionUseCase) Update(ctx context.Context, id string, in dto.PuntoEmisionRequest) (*dto.PuntoEmisionResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToPuntoEmisionResponse(p), nil
}

// Delete desactiva el punto de emisión.
func (uc *PuntoEmisionUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PuntoEmisionUseCase) EmpresaCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.EmpresaCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

// SucursalCatalog sucursales del selector; filtra por empresa si empresaID no está vacío.
func (uc *PuntoEmisionUseCase) SucursalCatalog(ctx context.Context, empresaID string) ([]dto.CatalogOption, error) {
	list, err := uc.repo.SucursalCatalog(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *PuntoEmisionUseCase) toEntity(in dto.PuntoEmisionRequest) entity.PuntoEmision {
	sec := entity.SecuencialInicial
	if in.SecuencialActual != nil {
		sec = *in.SecuencialActual
	}
	return entity.PuntoEmision{
		Codigo:           in.Codigo,
		Descripcion:      in.Descripcion,
		SecuencialActual: sec,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
		EmpresaID:        in.EmpresaID,
		SucursalID:       in.SucursalID,
		Activo:           boolOr(in.Activo, true),
	}
}

func entityToPuntoEmisionResponse(p *entity.PuntoEmision) *dto.PuntoEmisionResponse {
	if p == nil {
		return nil
	}
	return &dto.PuntoEmisionResponse{
		ID:               p.ID,
		Codigo:           p.Codigo,
		Descripcion:      p.Descripcion,
		SecuencialActual: p.SecuencialActual,
		UsuarioAuditoria: p.UsuarioAuditoria,
		EmpresaID:        p.EmpresaID,
		SucursalID:       p.SucursalID,
		Activo:           p.Activo,
	}
}

package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// EmpresaUseCase casos de uso de la empresa emisora.
type EmpresaUseCase struct {
	repo      repository.EmpresaRepository
	auditUser string
}

// NewEmpresaUseCase construye el caso de uso; auditUser es el usuario_auditoria por defecto.
func NewEmpresaUseCase(repo repository.EmpresaRepository, auditUser string) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, auditUser: auditUser}
}

// List lista las empresas.
func (uc *EmpresaUseCase) List(ctx context.Context) ([]dto.EmpresaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToEmpresaResponse), nil
}

// Create valida razón social y RUC y crea la empresa (activa por defecto).
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.EmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	e, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(e), nil
}

// Update valida id, razón social y RUC y actualiza la empresa.
func (uc *EmpresaUseCase) Update(ctx context.Context, id string, in dto.EmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	e, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(e), nil
}

// Delete elimina la empresa.
func (uc *EmpresaUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// TipoContribuyenteCatalog opciones del selector de tipo de contribuyente.
func (uc *EmpresaUseCase) TipoContribuyenteCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.TipoContribuyenteCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *EmpresaUseCase) toEntity(in dto.EmpresaRequest) entity.Empresa {
	return entity.Empresa{
		RazonSocial:           in.RazonSocial,
		NombreComercial:       in.NombreComercial,
		RUC:                   in.RUC,
		DireccionMatriz:       in.DireccionMatriz,
		Telefono:              in.Telefono,
		CodigoEstablecimiento: in.CodigoEstablecimiento,
		ObligadoContabilidad:  in.ObligadoContabilidad,
		TipoContribuyenteID:   in.TipoContribuyenteID,
		UsuarioAuditoria:      auditOr(in.UsuarioAuditoria, uc.auditUser),
		Activo:                boolOr(in.Activo, true),
	}
}

func entityToEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:                    e.ID,
		RazonSocial:           e.RazonSocial,
		NombreComercial:       e.NombreComercial,
		RUC:                   e.RUC,
		DireccionMatriz:       e.DireccionMatriz,
		Telefono:              e.Telefono,
		CodigoEstablecimiento: e.CodigoEstablecimiento,
		ObligadoContabilidad:  e.ObligadoContabilidad,
		TipoContribuyenteID:   e.TipoContribuyenteID,
		UsuarioAuditoria:      e.UsuarioAuditoria,
		Activo:                e.Activo,
	}
}

package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// ProveedorUseCase casos de uso de proveedores con persona.
type ProveedorUseCase struct {
	repo      repository.ProveedorRepository
	auditUser string
}

func NewProveedorUseCase(repo repository.ProveedorRepository, auditUser string) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, auditUser: auditUser}
}

func (uc *ProveedorUseCase) List(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToProveedorResponse), nil
}

// Create exige los datos de la persona y el tipo de contribuyente.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if err := validateProveedor(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToProveedorResponse(p), nil
}

func (uc *ProveedorUseCase) Update(ctx context.Context, id string, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateProveedor(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToProveedorResponse(p), nil
}

func (uc *ProveedorUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProveedorUseCase) TipoContribuyenteCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.TipoContribuyenteCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *ProveedorUseCase) FindPersona(ctx context.Context, identificacion string) *dto.PersonaResponse {
	return entityToPersonaResponse(uc.repo.FindPersonaByIdentificacion(ctx, identificacion))
}

func validateProveedor(in dto.ProveedorRequest) error {
	if err := validateStruct(in.PersonaInput); err != nil {
		return err
	}
	return validateStruct(in)
}

func (uc *ProveedorUseCase) toEntity(in dto.ProveedorRequest) entity.Proveedor {
	return entity.Proveedor{
		PersonaID:           in.PersonaID,
		Identidad:           identidadFromInput(in.PersonaInput),
		NombreComercial:     in.NombreComercial,
		TipoContribuyenteID: in.TipoContribuyenteID,
		UsuarioAuditoria:    auditOr(in.UsuarioAuditoria, uc.auditUser),
		Activo:              boolOr(in.Activo, true),
	}
}

func entityToProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:                      p.ID,
		PersonaFields:           personaFields(p.PersonaID, p.Identidad),
		NombreComercial:         p.NombreComercial,
		TipoContribuyenteID:     p.TipoContribuyenteID,
		TipoContribuyenteNombre: p.TipoContribuyenteNombre,
		UsuarioAuditoria:        p.UsuarioAuditoria,
		Activo:                  p.Activo,
	}
}

package usecase

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes. El alta y la edición crean o actualizan
// la persona asociada antes de escribir el cliente (lo resuelve el repositorio).
type ClienteUseCase struct {
	repo      repository.ClienteRepository
	auditUser string
}

func NewClienteUseCase(repo repository.ClienteRepository, auditUser string) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, auditUser: auditUser}
}

// List lista los clientes activos.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToClienteResponse), nil
}

// Create exige siempre los datos de la persona y luego el tipo de cliente.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validateCliente(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToClienteResponse(c), nil
}

func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateCliente(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToClienteResponse(c), nil
}

// Delete elimina el cliente; la persona se conserva.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ClienteUseCase) TipoClienteCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.TipoClienteCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

// FindPersona busca una persona por identificación; nil si no hay coincidencia.
func (uc *ClienteUseCase) FindPersona(ctx context.Context, identificacion string) *dto.PersonaResponse {
	return entityToPersonaResponse(uc.repo.FindPersonaByIdentificacion(ctx, identificacion))
}

func validateCliente(in dto.ClienteRequest) error {
	if err := validateStruct(in.PersonaInput); err != nil {
		return err
	}
	return validateStruct(in)
}

func (uc *ClienteUseCase) toEntity(in dto.ClienteRequest) entity.Cliente {
	return entity.Cliente{
		PersonaID:        in.PersonaID,
		Identidad:        identidadFromInput(in.PersonaInput),
		TipoClienteID:    in.TipoClienteID,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
		Activo:           boolOr(in.Activo, true),
	}
}

func entityToClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                c.ID,
		PersonaFields:     personaFields(c.PersonaID, c.Identidad),
		TipoClienteID:     c.TipoClienteID,
		TipoClienteNombre: c.TipoClienteNombre,
		UsuarioAuditoria:  c.UsuarioAuditoria,
		Activo:            c.Activo,
	}
}

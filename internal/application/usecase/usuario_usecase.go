package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// UsuarioUseCase casos de uso de usuarios del sistema.
type UsuarioUseCase struct {
	repo      repository.UsuarioRepository
	auditUser string
}

func NewUsuarioUseCase(repo repository.UsuarioRepository, auditUser string) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, auditUser: auditUser}
}

func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToUsuarioResponse), nil
}

// Create exige rol y credenciales; los datos de persona solo sin personaId.
// requiereCambioPassword es true si no se informa.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.UsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.PersonaID) == "" {
		if err := validateStruct(in.PersonaInput); err != nil {
			return nil, err
		}
	}
	u := uc.toEntity(in)
	if u.RequiereCambioPassword == nil {
		t := true
		u.RequiereCambioPassword = &t
	}
	out, err := uc.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return entityToUsuarioResponse(out), nil
}

// Update solo exige el id; una contraseña vacía no se envía.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.UsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	out, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToUsuarioResponse(out), nil
}

func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UsuarioUseCase) RolCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.RolCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

// PersonaCatalog personas activas para vincular al usuario.
func (uc *UsuarioUseCase) PersonaCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.PersonaCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *UsuarioUseCase) FindPersona(ctx context.Context, identificacion string) *dto.PersonaResponse {
	return entityToPersonaResponse(uc.repo.FindPersonaByIdentificacion(ctx, identificacion))
}

func (uc *UsuarioUseCase) toEntity(in dto.UsuarioRequest) entity.Usuario {
	return entity.Usuario{
		PersonaID:              in.PersonaID,
		Identidad:              identidadFromInput(in.PersonaInput),
		RolID:                  in.RolID,
		Username:               in.Username,
		Password:               in.Password,
		RequiereCambioPassword: in.RequiereCambioPassword,
		UsuarioAuditoria:       auditOr(in.UsuarioAuditoria, uc.auditUser),
		Activo:                 boolOr(in.Activo, true),
	}
}

func entityToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:                     u.ID,
		PersonaFields:          personaFields(u.PersonaID, u.Identidad),
		PersonaNombre:          u.PersonaNombre,
		RolID:                  u.RolID,
		RolNombre:              u.RolNombre,
		Username:               u.Username,
		RequiereCambioPassword: boolOr(u.RequiereCambioPassword, false),
		Activo:                 u.Activo,
	}
}

package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// EmpleadoUseCase casos de uso de empleados (persona + datos laborales + credenciales).
type EmpleadoUseCase struct {
	repo      repository.EmpleadoRepository
	auditUser string
}

func NewEmpleadoUseCase(repo repository.EmpleadoRepository, auditUser string) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo, auditUser: auditUser}
}

func (uc *EmpleadoUseCase) List(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapList(list, entityToEmpleadoResponse), nil
}

// Create exige salario (0 es válido), fecha de ingreso, rol y credenciales;
// los datos de persona solo cuando no se elige una persona existente.
func (uc *EmpleadoUseCase) Create(ctx context.Context, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Salario == nil {
		return nil, required("salario")
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.PersonaID) == "" {
		if err := validateStruct(in.PersonaInput); err != nil {
			return nil, err
		}
	}
	e, err := uc.repo.Create(ctx, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToEmpleadoResponse(e), nil
}

// Update solo exige el id; los campos vacíos no se envían.
func (uc *EmpleadoUseCase) Update(ctx context.Context, id string, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	e, err := uc.repo.Update(ctx, id, uc.toEntity(in))
	if err != nil {
		return nil, err
	}
	return entityToEmpleadoResponse(e), nil
}

func (uc *EmpleadoUseCase) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmpleadoUseCase) RolCatalog(ctx context.Context) ([]dto.CatalogOption, error) {
	list, err := uc.repo.RolCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogOptions(list), nil
}

func (uc *EmpleadoUseCase) FindPersona(ctx context.Context, identificacion string) *dto.PersonaResponse {
	return entityToPersonaResponse(uc.repo.FindPersonaByIdentificacion(ctx, identificacion))
}

func (uc *EmpleadoUseCase) toEntity(in dto.EmpleadoRequest) entity.Empleado {
	return entity.Empleado{
		PersonaID:        in.PersonaID,
		Identidad:        identidadFromInput(in.PersonaInput),
		Salario:          in.Salario,
		FechaIngreso:     in.FechaIngreso,
		FechaNacimiento:  in.FechaNacimiento,
		FechaSalida:      in.FechaSalida,
		Username:         in.Username,
		Password:         in.Password,
		RolID:            in.RolID,
		UsuarioAuditoria: auditOr(in.UsuarioAuditoria, uc.auditUser),
		Activo:           boolOr(in.Activo, true),
	}
}

func entityToEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleadoResponse{
		ID:                    e.ID,
		PersonaFields:         personaFields(e.PersonaID, e.Identidad),
		PersonaIdentificacion: e.PersonaIdentificacion,
		PersonaNombre:         e.PersonaNombre,
		Salario:               e.Salario,
		FechaIngreso:          e.FechaIngreso,
		FechaNacimiento:       e.FechaNacimiento,
		FechaSalida:           e.FechaSalida,
		Username:              e.Username,
		RolID:                 e.RolID,
		RolNombre:             e.RolNombre,
		Activo:                e.Activo,
	}
}

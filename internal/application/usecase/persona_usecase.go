package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// PersonaUseCase búsqueda de personas compartida por todos los formularios con persona.
type PersonaUseCase struct {
	repo repository.PersonaLookup
}

func NewPersonaUseCase(repo repository.PersonaLookup) *PersonaUseCase {
	return &PersonaUseCase{repo: repo}
}

// Lookup devuelve la persona con esa identificación o nil. Nunca falla:
// una identificación en blanco o un error del backend equivalen a "sin coincidencia".
func (uc *PersonaUseCase) Lookup(ctx context.Context, identificacion string) *dto.PersonaResponse {
	if strings.TrimSpace(identificacion) == "" {
		return nil
	}
	return entityToPersonaResponse(uc.repo.FindPersonaByIdentificacion(ctx, identificacion))
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

func TestProveedorCreate_TipoContribuyenteRequerido(t *testing.T) {
	uc := NewProveedorUseCase(new(mockProveedorRepo), "frontend")

	_, err := uc.Create(context.Background(), dto.ProveedorRequest{PersonaInput: personaValida()})
	requireValidation(t, err, "tipoContribuyenteId", "El tipo de contribuyente es requerido")
}

func TestProveedorUpdate(t *testing.T) {
	repo := new(mockProveedorRepo)
	uc := NewProveedorUseCase(repo, "frontend")

	repo.On("Update", mock.Anything, "pr-1", mock.MatchedBy(func(p entity.Proveedor) bool {
		return p.PersonaID == "p-1" && p.TipoContribuyenteID == "02" && p.NombreComercial == "Ferretería"
	})).Return(&entity.Proveedor{ID: "pr-1", TipoContribuyenteID: "02", TipoContribuyenteNombre: "Sociedad"}, nil)

	in := dto.ProveedorRequest{PersonaInput: personaValida(), NombreComercial: "Ferretería", TipoContribuyenteID: "02"}
	in.PersonaID = "p-1"
	out, err := uc.Update(context.Background(), "pr-1", in)
	require.NoError(t, err)
	assert.Equal(t, "Sociedad", out.TipoContribuyenteNombre)
	repo.AssertExpectations(t)
}

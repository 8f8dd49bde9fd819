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

func personaValida() dto.PersonaInput {
	return dto.PersonaInput{
		Identificacion:     "0102030405",
		TipoIdentificacion: "CEDULA",
		Nombre:             "Ana",
		Apellido:           "Paz",
	}
}

func TestClienteCreate_PersonaAntesQueTipoCliente(t *testing.T) {
	repo := new(mockClienteRepo)
	uc := NewClienteUseCase(repo, "frontend")

	_, err := uc.Create(context.Background(), dto.ClienteRequest{})
	requireValidation(t, err, "identificacion", "La identificacion es requerida")

	in := dto.ClienteRequest{PersonaInput: personaValida()}
	in.Apellido = ""
	_, err = uc.Create(context.Background(), in)
	requireValidation(t, err, "apellido", "El apellido es requerido")

	_, err = uc.Create(context.Background(), dto.ClienteRequest{PersonaInput: personaValida()})
	requireValidation(t, err, "tipoClienteId", "El tipo de cliente es requerido")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClienteCreate_PersonaRequeridaAunConPersonaID(t *testing.T) {
	uc := NewClienteUseCase(new(mockClienteRepo), "frontend")
	_, err := uc.Create(context.Background(), dto.ClienteRequest{
		PersonaInput:  dto.PersonaInput{PersonaID: "p-1"},
		TipoClienteID: "tc-1",
	})
	requireValidation(t, err, "identificacion", "La identificacion es requerida")
}

func TestClienteCreate_DelegaConValoresPorDefecto(t *testing.T) {
	repo := new(mockClienteRepo)
	uc := NewClienteUseCase(repo, "frontend")

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c entity.Cliente) bool {
		return c.Identificacion == "0102030405" && c.TipoClienteID == "tc-1" &&
			c.UsuarioAuditoria == "frontend" && c.Activo && c.PersonaID == ""
	})).Return(&entity.Cliente{
		ID:                "c-1",
		PersonaID:         "p-77",
		Identidad:         entity.Identidad{Identificacion: "0102030405", Nombre: "Ana"},
		TipoClienteID:     "tc-1",
		TipoClienteNombre: "Final",
		Activo:            true,
	}, nil)

	out, err := uc.Create(context.Background(), dto.ClienteRequest{PersonaInput: personaValida(), TipoClienteID: "tc-1"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.ID)
	assert.Equal(t, "p-77", out.PersonaID)
	assert.Equal(t, "Final", out.TipoClienteNombre)
	repo.AssertExpectations(t)
}

func TestClienteFindPersona(t *testing.T) {
	repo := new(mockClienteRepo)
	uc := NewClienteUseCase(repo, "frontend")
	repo.On("FindPersonaByIdentificacion", mock.Anything, "0102").Return(&entity.Persona{
		ID: "p-1", Identidad: entity.Identidad{Identificacion: "0102", Nombre: "Ana"}, Activo: true,
	})
	repo.On("FindPersonaByIdentificacion", mock.Anything, "9999").Return(nil)

	p := uc.FindPersona(context.Background(), "0102")
	require.NotNil(t, p)
	assert.Equal(t, "p-1", p.ID)
	assert.Nil(t, uc.FindPersona(context.Background(), "9999"))
}

func TestClienteList(t *testing.T) {
	repo := new(mockClienteRepo)
	uc := NewClienteUseCase(repo, "frontend")
	repo.On("List", mock.Anything).Return([]entity.Cliente{{ID: "1"}, {ID: "2"}}, nil)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[1].ID)
}

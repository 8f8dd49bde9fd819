package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
)

func requireValidation(t *testing.T, err error, field, msg string) {
	t.Helper()
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, llegó %T", err)
	assert.Equal(t, field, verr.Field)
	assert.Equal(t, msg, verr.Message)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateStruct_UsaNombreJSONYMensajeEnEspanol(t *testing.T) {
	err := validateStruct(dto.SucursalRequest{Codigo: "001"})
	requireValidation(t, err, "nombre", "El nombre es requerido")
}

func TestValidateStruct_SoloPrimerError(t *testing.T) {
	err := validateStruct(dto.RolRequest{})
	requireValidation(t, err, "nombre", "El nombre es requerido")
}

func TestValidateStruct_PersonaEmbebidaNoSeValida(t *testing.T) {
	err := validateStruct(dto.ClienteRequest{TipoClienteID: "tc-1"})
	assert.NoError(t, err, "los campos de persona se validan aparte")
}

func TestValidateStruct_CampoSinMensajeConocido(t *testing.T) {
	type raro struct {
		Otro string `json:"otro" validate:"required"`
	}
	requireValidation(t, validateStruct(raro{}), "otro", "El campo otro es requerido")
}

func TestRequireID(t *testing.T) {
	requireValidation(t, requireID("  "), "id", "El id es requerido")
	assert.NoError(t, requireID("7"))
}

func TestAuditOr(t *testing.T) {
	assert.Equal(t, "frontend", auditOr("", "frontend"))
	assert.Equal(t, "frontend", auditOr("   ", "frontend"))
	assert.Equal(t, "ana", auditOr("ana", "frontend"))
}

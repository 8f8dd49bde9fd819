package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

func TestTipoClienteCreate_DescuentoRequerido(t *testing.T) {
	repo := new(mockTipoClienteRepo)
	uc := NewTipoClienteUseCase(repo, "frontend")

	_, err := uc.Create(context.Background(), dto.TipoClienteRequest{})
	requireValidation(t, err, "nombre", "El nombre es requerido")

	_, err = uc.Create(context.Background(), dto.TipoClienteRequest{Nombre: "Mayorista"})
	requireValidation(t, err, "descuento", "El descuento es requerido")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTipoClienteCreate_DescuentoCero(t *testing.T) {
	repo := new(mockTipoClienteRepo)
	uc := NewTipoClienteUseCase(repo, "frontend")
	cero := decimal.Zero

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tc entity.TipoCliente) bool {
		return tc.Descuento.IsZero() && tc.UsuarioAuditoria == "frontend"
	})).Return(&entity.TipoCliente{ID: "1", Nombre: "Final"}, nil)

	out, err := uc.Create(context.Background(), dto.TipoClienteRequest{Nombre: "Final", Descuento: &cero})
	require.NoError(t, err)
	assert.Equal(t, "Final", out.Nombre)
}

func TestTipoClienteUpdate_ConservaDecimales(t *testing.T) {
	repo := new(mockTipoClienteRepo)
	uc := NewTipoClienteUseCase(repo, "frontend")
	d := decimal.RequireFromString("12.50")

	repo.On("Update", mock.Anything, "4", mock.MatchedBy(func(tc entity.TipoCliente) bool {
		return tc.Descuento.Equal(d)
	})).Return(&entity.TipoCliente{ID: "4", Descuento: d}, nil)

	out, err := uc.Update(context.Background(), "4", dto.TipoClienteRequest{Nombre: "VIP", Descuento: &d})
	require.NoError(t, err)
	assert.True(t, out.Descuento.Equal(d))
}

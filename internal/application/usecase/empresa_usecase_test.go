package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

func TestEmpresaCreate_ValidaEnOrden(t *testing.T) {
	repo := new(mockEmpresaRepo)
	uc := NewEmpresaUseCase(repo, "frontend")

	_, err := uc.Create(context.Background(), dto.EmpresaRequest{})
	requireValidation(t, err, "razonSocial", "La razón social es requerida")

	_, err = uc.Create(context.Background(), dto.EmpresaRequest{RazonSocial: "ACME"})
	requireValidation(t, err, "ruc", "El RUC es requerido")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmpresaCreate_AplicaValoresPorDefecto(t *testing.T) {
	repo := new(mockEmpresaRepo)
	uc := NewEmpresaUseCase(repo, "frontend")

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e entity.Empresa) bool {
		return e.RazonSocial == "ACME" && e.UsuarioAuditoria == "frontend" && e.Activo
	})).Return(&entity.Empresa{ID: "1", RazonSocial: "ACME", RUC: "1790000000001", Activo: true}, nil)

	out, err := uc.Create(context.Background(), dto.EmpresaRequest{RazonSocial: "ACME", RUC: "1790000000001"})
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.True(t, out.Activo)
	repo.AssertExpectations(t)
}

func TestEmpresaUpdate_RespetaActivoYAuditoria(t *testing.T) {
	repo := new(mockEmpresaRepo)
	uc := NewEmpresaUseCase(repo, "frontend")
	inactivo := false

	repo.On("Update", mock.Anything, "9", mock.MatchedBy(func(e entity.Empresa) bool {
		return !e.Activo && e.UsuarioAuditoria == "ana"
	})).Return(&entity.Empresa{ID: "9"}, nil)

	_, err := uc.Update(context.Background(), "9", dto.EmpresaRequest{
		RazonSocial: "ACME", RUC: "1", UsuarioAuditoria: "ana", Activo: &inactivo,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEmpresaUpdate_SinID(t *testing.T) {
	uc := NewEmpresaUseCase(new(mockEmpresaRepo), "frontend")
	_, err := uc.Update(context.Background(), "", dto.EmpresaRequest{RazonSocial: "A", RUC: "1"})
	requireValidation(t, err, "id", "El id es requerido")
}

func TestEmpresaCreate_PropagaErrorDelBackend(t *testing.T) {
	repo := new(mockEmpresaRepo)
	uc := NewEmpresaUseCase(repo, "frontend")
	apiErr := &domain.APIError{Status: 422, Message: "ruc duplicado", FieldErrors: map[string]string{"ruc": "ruc duplicado"}}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := uc.Create(context.Background(), dto.EmpresaRequest{RazonSocial: "A", RUC: "1"})
	assert.Same(t, apiErr, err)
}

func TestEmpresaDelete(t *testing.T) {
	repo := new(mockEmpresaRepo)
	uc := NewEmpresaUseCase(repo, "frontend")
	repo.On("Delete", mock.Anything, "3").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), "3"))
	requireValidation(t, uc.Delete(context.Background(), ""), "id", "El id es requerido")
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestPuntoEmisionCreate_SecuencialCeroEsValido(t *testing.T) {
	repo := new(mockPuntoEmisionRepo)
	uc := NewPuntoEmisionUseCase(repo, "frontend")
	cero := 0

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p entity.PuntoEmision) bool {
		return p.SecuencialActual == 0
	})).Return(&entity.PuntoEmision{ID: "1"}, nil)

	_, err := uc.Create(context.Background(), dto.PuntoEmisionRequest{
		Codigo: "001", Descripcion: "Caja", SecuencialActual: &cero, EmpresaID: "1", SucursalID: "2",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPuntoEmisionCreate_OrdenDeValidacion(t *testing.T) {
	uc := NewPuntoEmisionUseCase(new(mockPuntoEmisionRepo), "frontend")
	uno := 1

	cases := []struct {
		in    dto.PuntoEmisionRequest
		field string
		msg   string
	}{
		{dto.PuntoEmisionRequest{}, "codigo", "El código es requerido"},
		{dto.PuntoEmisionRequest{Codigo: "1"}, "descripcion", "La descripción es requerida"},
		{dto.PuntoEmisionRequest{Codigo: "1", Descripcion: "d"}, "secuencialActual", "El secuencial actual es requerido"},
		{dto.PuntoEmisionRequest{Codigo: "1", Descripcion: "d", SecuencialActual: &uno}, "empresaId", "La empresa es requerida"},
		{dto.PuntoEmisionRequest{Codigo: "1", Descripcion: "d", SecuencialActual: &uno, EmpresaID: "e"}, "sucursalId", "La sucursal es requerida"},
	}
	for _, tc := range cases {
		_, err := uc.Create(context.Background(), tc.in)
		requireValidation(t, err, tc.field, tc.msg)
	}
}

func TestPuntoEmisionSucursalCatalog(t *testing.T) {
	repo := new(mockPuntoEmisionRepo)
	uc := NewPuntoEmisionUseCase(repo, "frontend")
	repo.On("SucursalCatalog", mock.Anything, "e1").Return([]entity.CatalogOption{{Value: "s1", Label: "001 - Matriz"}}, nil)

	out, err := uc.SucursalCatalog(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []dto.CatalogOption{{Value: "s1", Label: "001 - Matriz"}}, out)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/memory"
)

func seedLedger(t *testing.T, ids ...string) *memory.OrphanPersonaLedger {
	t.Helper()
	l := memory.NewOrphanPersonaLedger()
	for _, id := range ids {
		require.NoError(t, l.Record(context.Background(), &entity.OrphanPersona{
			PersonaID: id, Recurso: "/api/clientes", Motivo: "tipo_cliente_id inválido", Intentos: 1,
		}))
	}
	return l
}

func TestReconcileRun(t *testing.T) {
	ledger := seedLedger(t, "p-1", "p-2", "p-3")
	personas := new(mockPersonaRepo)
	personas.On("Delete", mock.Anything, "p-1").Return(nil)
	personas.On("Delete", mock.Anything, "p-2").Return(&domain.APIError{Status: 404, Message: "no existe"})
	personas.On("Delete", mock.Anything, "p-3").Return(&domain.APIError{Status: 503, Message: "caído"})

	uc := NewReconcileUseCase(ledger, personas, nil)
	res, err := uc.Run(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Revisadas)
	assert.Equal(t, 2, res.Resueltas)
	assert.Equal(t, 1, res.Fallidas)
	require.Len(t, res.Pendientes, 1)
	assert.Equal(t, "p-3", res.Pendientes[0].PersonaID)
	assert.Equal(t, 2, res.Pendientes[0].Intentos)
	assert.Equal(t, "caído", res.Pendientes[0].UltimoError)
}

func TestReconcileRun_SinPendientes(t *testing.T) {
	uc := NewReconcileUseCase(memory.NewOrphanPersonaLedger(), new(mockPersonaRepo), nil)
	res, err := uc.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, res.Revisadas)
	assert.Empty(t, res.Pendientes)
}

func TestReconcileRun_ContextoCancelado(t *testing.T) {
	ledger := seedLedger(t, "p-1")
	uc := NewReconcileUseCase(ledger, new(mockPersonaRepo), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, 10)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReconcilePending(t *testing.T) {
	uc := NewReconcileUseCase(seedLedger(t, "p-1", "p-2"), new(mockPersonaRepo), nil)
	out, err := uc.Pending(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p-1", out[0].PersonaID)
}

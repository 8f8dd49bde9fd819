package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// DefaultReconcileBatch máximo de entradas revisadas por pasada.
const DefaultReconcileBatch = 100

// ReconcileUseCase reintenta eliminar las personas huérfanas registradas en el libro.
type ReconcileUseCase struct {
	ledger   repository.OrphanPersonaRepository
	personas repository.PersonaRepository
	log      *logger.Logger
}

func NewReconcileUseCase(ledger repository.OrphanPersonaRepository, personas repository.PersonaRepository, log *logger.Logger) *ReconcileUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReconcileUseCase{ledger: ledger, personas: personas, log: log.Component("reconcile")}
}

// Pending lista las personas huérfanas sin resolver.
func (uc *ReconcileUseCase) Pending(ctx context.Context, limit int) ([]dto.OrphanPersonaResponse, error) {
	if limit <= 0 {
		limit = DefaultReconcileBatch
	}
	list, err := uc.ledger.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listar huérfanas: %w", err)
	}
	return toOrphanResponses(list), nil
}

// Run elimina cada persona pendiente. Un 404 cuenta como resuelta (ya no existe);
// cualquier otro fallo se anota como intento y la entrada sigue pendiente.
func (uc *ReconcileUseCase) Run(ctx context.Context, limit int) (*dto.ReconcileResponse, error) {
	if limit <= 0 {
		limit = DefaultReconcileBatch
	}
	list, err := uc.ledger.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listar huérfanas: %w", err)
	}

	res := &dto.ReconcileResponse{Revisadas: len(list)}
	for _, o := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		derr := uc.personas.Delete(ctx, o.PersonaID)
		if derr == nil || errors.Is(derr, domain.ErrNotFound) {
			if err := uc.ledger.MarkResolved(ctx, o.ID); err != nil {
				return nil, fmt.Errorf("marcar resuelta %s: %w", o.ID, err)
			}
			res.Resueltas++
			uc.log.Info().Str("persona_id", o.PersonaID).Str("recurso", o.Recurso).Msg("persona huérfana eliminada")
			continue
		}
		res.Fallidas++
		uc.log.Warn().Err(derr).Str("persona_id", o.PersonaID).Int("intentos", o.Intentos+1).Msg("no se pudo eliminar la persona huérfana")
		if err := uc.ledger.RegisterAttempt(ctx, o.ID, derr.Error()); err != nil {
			return nil, fmt.Errorf("registrar intento %s: %w", o.ID, err)
		}
	}

	pending, err := uc.ledger.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listar huérfanas: %w", err)
	}
	res.Pendientes = toOrphanResponses(pending)
	return res, nil
}

func toOrphanResponses(list []*entity.OrphanPersona) []dto.OrphanPersonaResponse {
	out := make([]dto.OrphanPersonaResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrphanPersonaResponse{
			ID:             o.ID,
			PersonaID:      o.PersonaID,
			Identificacion: o.Identificacion,
			Recurso:        o.Recurso,
			Motivo:         o.Motivo,
			Intentos:       o.Intentos,
			UltimoError:    o.UltimoError,
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}
	return out
}

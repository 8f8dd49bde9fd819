package repository

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// OrphanPersonaRepository registro de personas huérfanas pendientes de conciliación.
type OrphanPersonaRepository interface {
	Record(ctx context.Context, o *entity.OrphanPersona) error
	ListPending(ctx context.Context, limit int) ([]*entity.OrphanPersona, error)
	MarkResolved(ctx context.Context, id string) error
	RegisterAttempt(ctx context.Context, id, lastErr string) error
}

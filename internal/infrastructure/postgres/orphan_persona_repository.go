package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.OrphanPersonaRepository = (*OrphanPersonaRepo)(nil)

// DB subconjunto de pgxpool.Pool / pgx.Tx que usa el repositorio.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// OrphanPersonaRepo registro de personas huérfanas sobre PostgreSQL.
type OrphanPersonaRepo struct {
	db DB
}

func NewOrphanPersonaRepository(db DB) *OrphanPersonaRepo {
	return &OrphanPersonaRepo{db: db}
}

// Record inserta la entrada; si la persona ya está pendiente solo suma el intento.
func (r *OrphanPersonaRepo) Record(ctx context.Context, o *entity.OrphanPersona) error {
	if o == nil || o.PersonaID == "" {
		return domain.ErrInvalidInput
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Intentos <= 0 {
		o.Intentos = 1
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	query := `
		INSERT INTO orphan_personas (id, persona_id, identificacion, recurso, motivo, intentos, ultimo_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (persona_id) WHERE resolved_at IS NULL
		DO UPDATE SET intentos = orphan_personas.intentos + 1,
		              ultimo_error = EXCLUDED.ultimo_error,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.PersonaID, o.Identificacion, o.Recurso, o.Motivo,
		o.Intentos, o.UltimoError, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orphan persona: %w", err)
	}
	return nil
}

// ListPending devuelve las pendientes más antiguas primero.
func (r *OrphanPersonaRepo) ListPending(ctx context.Context, limit int) ([]*entity.OrphanPersona, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, persona_id, identificacion, recurso, motivo, intentos, ultimo_error, created_at, updated_at
		FROM orphan_personas
		WHERE resolved_at IS NULL
		ORDER BY created_at, persona_id
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orphan personas: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrphanPersona
	for rows.Next() {
		var o entity.OrphanPersona
		if err := rows.Scan(
			&o.ID, &o.PersonaID, &o.Identificacion, &o.Recurso, &o.Motivo,
			&o.Intentos, &o.UltimoError, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orphan persona: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows orphan personas: %w", err)
	}
	return list, nil
}

// MarkResolved cierra la entrada. domain.ErrNotFound si no existe o ya estaba resuelta.
func (r *OrphanPersonaRepo) MarkResolved(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orphan_personas SET resolved_at = now(), updated_at = now() WHERE id = $1 AND resolved_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("resolve orphan persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RegisterAttempt suma un intento fallido de conciliación.
func (r *OrphanPersonaRepo) RegisterAttempt(ctx context.Context, id, lastErr string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orphan_personas SET intentos = intentos + 1, ultimo_error = $2, updated_at = now() WHERE id = $1`, id, lastErr)
	if err != nil {
		return fmt.Errorf("attempt orphan persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

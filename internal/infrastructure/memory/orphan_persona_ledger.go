package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.OrphanPersonaRepository = (*OrphanPersonaLedger)(nil)

// OrphanPersonaLedger registro de personas huérfanas en memoria, para cuando no hay base de datos.
// Se pierde al reiniciar el proceso.
type OrphanPersonaLedger struct {
	mu      sync.Mutex
	entries map[string]*entity.OrphanPersona
	now     func() time.Time
}

// NewOrphanPersonaLedger construye el registro vacío.
func NewOrphanPersonaLedger() *OrphanPersonaLedger {
	return &OrphanPersonaLedger{
		entries: make(map[string]*entity.OrphanPersona),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Record guarda una copia de la entrada; asigna ID y fechas si faltan.
// Si la persona ya está pendiente, solo acumula el intento.
func (l *OrphanPersonaLedger) Record(_ context.Context, o *entity.OrphanPersona) error {
	if o == nil || o.PersonaID == "" {
		return domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, e := range l.entries {
		if e.PersonaID == o.PersonaID && e.ResolvedAt == nil {
			e.Intentos++
			e.UltimoError = o.UltimoError
			e.UpdatedAt = now
			return nil
		}
	}

	cp := *o
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	l.entries[cp.ID] = &cp
	return nil
}

// ListPending pendientes por antigüedad; limit <= 0 devuelve todas.
func (l *OrphanPersonaLedger) ListPending(_ context.Context, limit int) ([]*entity.OrphanPersona, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*entity.OrphanPersona, 0, len(l.entries))
	for _, e := range l.entries {
		if e.ResolvedAt == nil {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].PersonaID < out[j].PersonaID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *OrphanPersonaLedger) MarkResolved(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := l.now()
	e.ResolvedAt = &now
	e.UpdatedAt = now
	return nil
}

func (l *OrphanPersonaLedger) RegisterAttempt(_ context.Context, id, lastErr string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Intentos++
	e.UltimoError = lastErr
	e.UpdatedAt = l.now()
	return nil
}

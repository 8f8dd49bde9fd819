package console

import (
	"sync"

	"github.com/jhoicas/consola-admin/internal/domain"
)

// WriteGuard permite una sola escritura en curso por operador y recurso.
// Una segunda escritura concurrente se rechaza sin llegar al backend.
type WriteGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewWriteGuard() *WriteGuard {
	return &WriteGuard{inFlight: make(map[string]struct{})}
}

// Acquire reserva la escritura; devuelve domain.ErrBusy si ya hay una en curso.
// release debe llamarse al terminar (idempotente).
func (g *WriteGuard) Acquire(operator, resource string) (release func(), err error) {
	key := operator + "\x00" + resource
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return nil, domain.ErrBusy
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}

// InFlight número de escrituras en curso.
func (g *WriteGuard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inFlight)
}

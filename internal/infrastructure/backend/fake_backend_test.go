package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// recorded petición recibida por el backend falso.
type recorded struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// fakeBackend servidor httptest que registra las peticiones y responde según rutas.
type fakeBackend struct {
	t        *testing.T
	srv      *httptest.Server
	mu       sync.Mutex
	requests []recorded
	routes   map[string]http.HandlerFunc // clave "METHOD /path"
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{t: t, routes: map[string]http.HandlerFunc{}}
	fb.srv = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}
	fb.mu.Lock()
	fb.requests = append(fb.requests, rec)
	h, ok := fb.routes[r.Method+" "+r.URL.Path]
	fb.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
		return
	}
	h(w, r)
}

func (fb *fakeBackend) on(method, path string, h http.HandlerFunc) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = h
}

func (fb *fakeBackend) calls() []recorded {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]recorded, len(fb.requests))
	copy(out, fb.requests)
	return out
}

// calledRoutes "METHOD /path" en orden de llegada.
func (fb *fakeBackend) calledRoutes() []string {
	var out []string
	for _, c := range fb.calls() {
		out = append(out, c.Method+" "+c.Path)
	}
	return out
}

func (fb *fakeBackend) client() *Client {
	return NewClient(fb.srv.URL, 2*time.Second, logger.Nop())
}

// options dependencias de los adaptadores; ledger puede ser nil.
func (fb *fakeBackend) options(ledger repository.OrphanPersonaRepository) Options {
	c := fb.client()
	return Options{
		Client:    c,
		Personas:  NewPersonaGateway(c, ledger, logger.Nop()),
		AuditUser: "frontend",
		Logger:    logger.Nop(),
	}
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

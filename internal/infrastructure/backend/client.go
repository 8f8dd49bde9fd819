package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/consola-admin/pkg/logger"
)

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 4 << 20

// Client cliente HTTP del backend REST: URL base, timeout fijo, JSON y sin reintentos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout <= 0 usa 10 s.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}
}

// HTTPError respuesta no 2xx o fallo de transporte.
// Status es 0 cuando no hubo respuesta; Body conserva el cuerpo crudo para normalizar el detalle.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   []byte
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
		}
		return fmt.Sprintf("backend %s %s: sin respuesta", e.Method, e.Path)
	}
	return fmt.Sprintf("backend %s %s: respondió con estado %d", e.Method, e.Path, e.Status)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// Do ejecuta la petición y decodifica la respuesta JSON en out (si out no es nil y hay cuerpo).
// Devuelve *HTTPError para respuestas no 2xx y fallos de red.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar body de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend sin respuesta")
		return &HTTPError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Body: raw}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// Get atajo para GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post atajo para POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put atajo para PUT.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete atajo para DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// getList obtiene un listado aceptando arreglo plano o {items: [...]}; cualquier otra forma es lista vacía.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, nil
	}
	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("backend: decodificar listado: %w", err)
		}
		return items, nil
	case '{':
		var env struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("backend: decodificar listado: %w", err)
		}
		items := bytes.TrimSpace(env.Items)
		if len(items) == 0 || items[0] != '[' {
			return []T{}, nil
		}
		var out []T
		if err := json.Unmarshal(items, &out); err != nil {
			return nil, fmt.Errorf("backend: decodificar listado: %w", err)
		}
		return out, nil
	default:
		return []T{}, nil
	}
}

// resourcePath arma /api/recurso/:id escapando el id.
func resourcePath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

// flexID identificador que el backend puede enviar como número o como texto.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id no numérico ni texto: %s", string(b))
	}
	*f = flexID(n.String())
	return nil
}

// flexInt entero que puede llegar como número o como texto numérico.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return errors.Join(err, ferr)
		}
		n = int(fl)
	}
	*f = flexInt(n)
	return nil
}

package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/consola-admin/internal/domain"
)

// fieldNames diccionario snake_case -> camelCase propio de cada adaptador.
type fieldNames map[string]string

func (f fieldNames) key(k string) string {
	if mapped, ok := f[k]; ok {
		return mapped
	}
	return k
}

// locStrategy obtiene la clave de formulario a partir del loc de un error de validación.
// Devuelve "" cuando no hay clave.
type locStrategy func(loc []any, names fieldNames) string

// lastSegment usa el último segmento del loc.
func lastSegment(loc []any, names fieldNames) string {
	if len(loc) == 0 {
		return ""
	}
	last := segment(loc[len(loc)-1])
	if last == "" {
		return ""
	}
	return names.key(last)
}

// bodyPath une el loc sin el primer segmento ("body") y quita el prefijo "persona.".
func bodyPath(loc []any, names fieldNames) string {
	if len(loc) < 2 {
		return ""
	}
	parts := make([]string, 0, len(loc)-1)
	for _, s := range loc[1:] {
		parts = append(parts, segment(s))
	}
	path := strings.Join(parts, ".")
	if path == "" {
		return ""
	}
	path = strings.TrimPrefix(path, "persona.")
	return names.key(path)
}

func segment(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// errorNormalizer convierte fallos del backend en *domain.APIError con errores por campo.
type errorNormalizer struct {
	names    fieldNames
	strategy locStrategy
}

func newNormalizer(names fieldNames, strategy locStrategy) errorNormalizer {
	if strategy == nil {
		strategy = lastSegment
	}
	return errorNormalizer{names: names, strategy: strategy}
}

// normalize {detail:[{loc,msg}]} -> mensaje unido con " / " y errores por campo;
// detail no lista -> mensaje literal; sin cuerpo estructurado -> mensaje de transporte.
func (n errorNormalizer) normalize(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	out := &domain.APIError{Message: err.Error(), FieldErrors: map[string]string{}}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return out
	}
	out.Status = httpErr.Status
	if strings.TrimSpace(out.Message) == "" {
		out.Message = "Error desconocido"
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(httpErr.Body) == 0 || json.Unmarshal(httpErr.Body, &body) != nil {
		return out
	}
	detail := strings.TrimSpace(string(body.Detail))
	if detail == "" || detail == "null" {
		return out
	}

	switch detail[0] {
	case '[':
		var entries []json.RawMessage
		if json.Unmarshal(body.Detail, &entries) != nil {
			return out
		}
		msgs := make([]string, 0, len(entries))
		for _, raw := range entries {
			msg, loc, hasLoc := parseEntry(raw)
			msgs = append(msgs, msg)
			if !hasLoc {
				continue
			}
			if key := n.strategy(loc, n.names); key != "" {
				out.FieldErrors[key] = msg
			}
		}
		out.Message = strings.Join(msgs, " / ")
	case '"':
		var s string
		if json.Unmarshal(body.Detail, &s) == nil && s != "" {
			out.Message = s
		}
	default:
		out.Message = compactJSON(body.Detail)
	}
	return out
}

// parseEntry extrae msg (o la entrada como JSON si no hay msg) y loc.
func parseEntry(raw json.RawMessage) (msg string, loc []any, hasLoc bool) {
	var entry struct {
		Loc json.RawMessage `json:"loc"`
		Msg any             `json:"msg"`
	}
	if json.Unmarshal(raw, &entry) != nil {
		return compactJSON(raw), nil, false
	}
	if s, ok := entry.Msg.(string); ok && s != "" {
		msg = s
	} else {
		msg = compactJSON(raw)
	}
	trimmed := strings.TrimSpace(string(entry.Loc))
	if trimmed == "" || trimmed[0] != '[' {
		return msg, nil, false
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	if dec.Decode(&loc) != nil {
		return msg, nil, false
	}
	return msg, loc, true
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

package backend

import (
	"reflect"
	"strings"
)

// payload cuerpo snake_case enviado al backend.
type payload map[string]any

// sanitize elimina claves nil o con texto vacío/solo espacios.
// Las claves de keepNull se conservan siempre, como null cuando no tienen valor.
func sanitize(in payload, keepNull ...string) payload {
	out := make(payload, len(in))
	for k, v := range in {
		if contains(keepNull, k) {
			if isNil(v) {
				out[k] = nil
			} else {
				out[k] = v
			}
			continue
		}
		if isNil(v) || isBlank(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func contains(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isBlank(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.String && strings.TrimSpace(rv.String()) == ""
}

// optional devuelve nil para texto vacío, para que sanitize lo descarte o lo envíe como null.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// orDefault devuelve def cuando s está vacío.
func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

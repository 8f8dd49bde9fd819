package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	var nilStr *string
	blank := "   "
	tests := []struct {
		name     string
		in       payload
		keepNull []string
		want     payload
	}{
		{
			name: "descarta nil y texto vacío",
			in:   payload{"a": "x", "b": nil, "c": "", "d": "  ", "e": nilStr, "f": &blank},
			want: payload{"a": "x"},
		},
		{
			name: "conserva ceros y false",
			in:   payload{"activo": false, "secuencial": 0},
			want: payload{"activo": false, "secuencial": 0},
		},
		{
			name:     "clave nullable se envía como null",
			in:       payload{"persona_id": nil, "tipo_cliente_id": "tc-1"},
			keepNull: []string{"persona_id"},
			want:     payload{"persona_id": nil, "tipo_cliente_id": "tc-1"},
		},
		{
			name:     "clave nullable con valor pasa tal cual",
			in:       payload{"persona_id": "p-1"},
			keepNull: []string{"persona_id"},
			want:     payload{"persona_id": "p-1"},
		},
		{
			name:     "clave nullable con texto vacío no se descarta",
			in:       payload{"persona_id": ""},
			keepNull: []string{"persona_id"},
			want:     payload{"persona_id": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.in, tt.keepNull...))
		})
	}
}

func TestSanitize_MapaAnidadoSeConserva(t *testing.T) {
	out := sanitize(payload{"usuario": sanitize(payload{"username": " "})})
	assert.Contains(t, out, "usuario", "un objeto vacío no es nil")
}

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	type row struct {
		ID flexID `json:"id"`
	}
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"arreglo plano", `[{"id":1},{"id":"b"}]`, 2},
		{"envoltorio items", `{"items":[{"id":1}],"total":1}`, 1},
		{"objeto sin items", `{"total":0}`, 0},
		{"items no lista", `{"items":null}`, 0},
		{"vacío", ``, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[row](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFlexID(t *testing.T) {
	var v struct {
		A flexID  `json:"a"`
		B flexID  `json:"b"`
		C *flexID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"x-1","c":null}`), &v))
	assert.Equal(t, flexID("12"), v.A)
	assert.Equal(t, flexID("x-1"), v.B)
	assert.Nil(t, v.C)
}

func TestFlexInt(t *testing.T) {
	var v struct {
		A flexInt `json:"a"`
		B flexInt `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"7","b":3}`), &v))
	assert.Equal(t, flexInt(7), v.A)
	assert.Equal(t, flexInt(3), v.B)
}

func TestClient_ErrorDeEstadoConservaCuerpo(t *testing.T) {
	fb := newFakeBackend(t)
	fb.on(http.MethodGet, "/api/roles", jsonReply(http.StatusBadRequest, `{"detail":"malo"}`))

	err := fb.client().Get(context.Background(), "/api/roles", nil, nil)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.JSONEq(t, `{"detail":"malo"}`, string(httpErr.Body))
}

func TestClient_ContextoCancelado(t *testing.T) {
	fb := newFakeBackend(t)
	fb.on(http.MethodGet, "/api/roles", jsonReply(http.StatusOK, `[]`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := fb.client().Get(ctx, "/api/roles", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

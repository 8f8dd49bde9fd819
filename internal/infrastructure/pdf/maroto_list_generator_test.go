package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/ports"
)

func TestGenerateListPDF(t *testing.T) {
	g := NewMarotoListGenerator("consola-admin")
	doc, err := g.GenerateListPDF(context.Background(), ports.ListReport{
		Title: "Clientes",
		Columns: []ports.ReportColumn{
			{Header: "Identificación", Size: 3},
			{Header: "Nombre", Size: 5},
			{Header: "Tipo", Size: 4},
		},
		Rows: [][]string{
			{"0102030405", "Ana Paz", "Final"},
			{"1790000000001", "ACME S.A.", ""},
		},
		GeneratedBy: "admin",
		GeneratedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateListPDF_SinRegistrosYHorizontal(t *testing.T) {
	cols := make([]ports.ReportColumn, 8)
	for i := range cols {
		cols[i] = ports.ReportColumn{Header: "c", Size: 2}
	}
	doc, err := NewMarotoListGenerator("x").GenerateListPDF(context.Background(), ports.ListReport{
		Title: "Empleados", Columns: cols, GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestGenerateListPDF_SinColumnas(t *testing.T) {
	_, err := NewMarotoListGenerator("x").GenerateListPDF(context.Background(), ports.ListReport{Title: "x"})
	assert.Error(t, err)
}

func TestColumnSizes(t *testing.T) {
	assert.Equal(t, []int{3, 5, 4}, columnSizes([]ports.ReportColumn{{Size: 3}, {Size: 5}, {Size: 4}}))
	// no caben: reparto igual
	assert.Equal(t, []int{3, 3, 3, 3}, columnSizes([]ports.ReportColumn{{Size: 4}, {Size: 4}, {Size: 4}, {Size: 4}}))
	assert.Equal(t, []int{3, 3, 2, 2, 2}, columnSizes(make([]ports.ReportColumn, 5)))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000,50", formatMoney("1000000.50"))
	assert.Equal(t, "-1.250", formatMoney("-1250"))
	assert.Equal(t, "850", formatMoney("850"))
}

// Package pdf exporta los listados de la consola a PDF.
//
// Layout de la página A4 (horizontal si hay más de seis columnas):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado     │  Fecha + operador         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por campo visible en la vista           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/consola-admin/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const gridSize = 12

var _ ports.ListPDFGenerator = (*MarotoListGenerator)(nil)

// MarotoListGenerator implementa ports.ListPDFGenerator usando Maroto v2.
type MarotoListGenerator struct {
	author string
}

// NewMarotoListGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoListGenerator(author string) *MarotoListGenerator {
	return &MarotoListGenerator{author: author}
}

// GenerateListPDF genera el PDF del listado y devuelve sus bytes.
func (g *MarotoListGenerator) GenerateListPDF(ctx context.Context, report ports.ListReport) ([]byte, error) {
	if len(report.Columns) == 0 {
		return nil, fmt.Errorf("pdf: el listado no tiene columnas")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true)
	if len(report.Columns) > 6 {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(builder.Build())

	sizes := columnSizes(report.Columns)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(report.Columns, sizes))
	m.AddRows(tableRows(report, sizes)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report ports.ListReport) core.Row {
	meta := "Generado: " + report.GeneratedAt.Format("02/01/2006 15:04")
	if report.GeneratedBy != "" {
		meta += "   |   Operador: " + report.GeneratedBy
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(meta, props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 4,
			}),
		),
	)
}

func tableHeaderRow(cols []ports.ReportColumn, sizes []int) core.Row {
	r := row.New(8)
	for i, c := range cols {
		r.Add(col.New(sizes[i]).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignOf(c),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRows(report ports.ListReport, sizes []int) []core.Row {
	out := make([]core.Row, 0, len(report.Rows)+1)
	if len(report.Rows) == 0 {
		return append(out, row.New(10).Add(col.New(gridSize).Add(
			text.New("Sin registros", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}
	for n, cells := range report.Rows {
		r := row.New(6)
		for i, c := range report.Columns {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if c.Money && value != "" {
				value = formatMoney(value)
			}
			r.Add(col.New(sizes[i]).Add(text.New(nonEmpty(value, "—"), props.Text{
				Size: 7.5, Align: alignOf(c), Top: 1, Left: 1, Right: 1,
			})))
		}
		if n%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, r)
	}
	return out
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(gridSize).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSizes ajusta los anchos a la rejilla de 12. Si no caben o faltan, se reparten por igual.
func columnSizes(cols []ports.ReportColumn) []int {
	sizes := make([]int, len(cols))
	total := 0
	valid := true
	for i, c := range cols {
		if c.Size <= 0 {
			valid = false
		}
		sizes[i] = c.Size
		total += c.Size
	}
	if valid && total <= gridSize {
		return sizes
	}
	n := len(cols)
	if n > gridSize {
		n = gridSize
	}
	for i := range sizes {
		sizes[i] = 0
		if i < n {
			sizes[i] = gridSize / n
		}
	}
	for i := 0; i < gridSize%n; i++ {
		sizes[i]++
	}
	return sizes
}

func alignOf(c ports.ReportColumn) align.Type {
	if c.Right {
		return align.Right
	}
	return align.Left
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un importe.
// Ej: "25000" → "25.000", "1000000.50" → "1.000.000,50"
func formatMoney(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i+1:]
			break
		}
	}
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg, intPart = true, intPart[1:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(frac)+2)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return string(buf)
}

package ports

import (
	"context"
	"time"
)

// ReportColumn columna de un listado exportado. Size es el ancho en la rejilla de 12.
type ReportColumn struct {
	Header string
	Size   int
	Right  bool // alinear a la derecha (importes, secuenciales)
	Money  bool // importe con separador de miles
}

// ListReport listado de una página de la consola listo para exportar.
type ListReport struct {
	Title       string
	Columns     []ReportColumn
	Rows        [][]string
	GeneratedBy string
	GeneratedAt time.Time
}

// ListPDFGenerator genera el PDF de un listado.
type ListPDFGenerator interface {
	GenerateListPDF(ctx context.Context, report ListReport) ([]byte, error)
}

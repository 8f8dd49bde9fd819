package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/console"
	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
)

// flashes mensajes de confirmación de una página.
type flashes struct {
	created string
	updated string
	deleted string
}

// resource una página CRUD de la consola: listado con catálogos, formulario y exportación.
type resource[Req any, Res any] struct {
	name     string // segmento de ruta, p. ej. "empresas"
	title    string // título del PDF
	flash    flashes
	list     func(ctx context.Context) ([]Res, error)
	catalogs map[string]console.CatalogFunc
	create   func(ctx context.Context, in Req) (*Res, error)
	update   func(ctx context.Context, id string, in Req) (*Res, error)
	remove   func(ctx context.Context, id string) error
	columns  []ports.ReportColumn
	row      func(r Res) []string
}

// mount registra las rutas del recurso. Las escrituras pasan por el guard; borrar exige adminRole.
func (r *resource[Req, Res]) mount(g fiber.Router, guard writeGuard, pdf ports.ListPDFGenerator, adminRole string) {
	base := "/" + r.name
	g.Get(base, r.page)
	g.Get(base+"/export.pdf", r.export(pdf))
	g.Post(base, RequireWriteSlot(r.name, guard), r.createHandler)
	g.Put(base+"/:id", RequireWriteSlot(r.name, guard), r.updateHandler)
	g.Delete(base+"/:id", RequireRole(adminRole), RequireWriteSlot(r.name, guard), r.deleteHandler)
}

func (r *resource[Req, Res]) page(c *fiber.Ctx) error {
	page, err := console.LoadPage(c.UserContext(), r.list, r.catalogs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

func (r *resource[Req, Res]) createHandler(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := r.create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WriteResponse[*Res]{Item: out, Flash: r.flash.created})
}

func (r *resource[Req, Res]) updateHandler(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := r.update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.WriteResponse[*Res]{Item: out, Flash: r.flash.updated})
}

func (r *resource[Req, Res]) deleteHandler(c *fiber.Ctx) error {
	if err := r.remove(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FlashResponse{Flash: r.flash.deleted})
}

// export genera el PDF del listado actual.
func (r *resource[Req, Res]) export(pdf ports.ListPDFGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if pdf == nil {
			return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "PDF_DISABLED", Message: "exportación no disponible"})
		}
		items, err := r.list(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, r.row(it))
		}
		report := ports.ListReport{
			Title:       r.title,
			Columns:     r.columns,
			Rows:        rows,
			GeneratedBy: GetUsername(c),
			GeneratedAt: time.Now(),
		}
		b, err := pdf.GenerateListPDF(c.UserContext(), report)
		if err != nil {
			return writeError(c, fmt.Errorf("generando PDF de %s: %w", r.name, err))
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, r.name))
		return c.Send(b)
	}
}

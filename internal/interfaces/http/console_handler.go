package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/console"
	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// ConsoleHandler agrupa las páginas de la consola administrativa.
type ConsoleHandler struct {
	empresas      *usecase.EmpresaUseCase
	sucursales    *usecase.SucursalUseCase
	puntosEmision *usecase.PuntoEmisionUseCase
	roles         *usecase.RolUseCase
	tiposCliente  *usecase.TipoClienteUseCase
	clientes      *usecase.ClienteUseCase
	empleados     *usecase.EmpleadoUseCase
	usuarios      *usecase.UsuarioUseCase
	proveedores   *usecase.ProveedorUseCase
	personas      *usecase.PersonaUseCase
	reconcile     *usecase.ReconcileUseCase

	guard     writeGuard
	pdf       ports.ListPDFGenerator
	adminRole string
}

// ConsoleDeps dependencias del handler de la consola.
type ConsoleDeps struct {
	Empresas      *usecase.EmpresaUseCase
	Sucursales    *usecase.SucursalUseCase
	PuntosEmision *usecase.PuntoEmisionUseCase
	Roles         *usecase.RolUseCase
	TiposCliente  *usecase.TipoClienteUseCase
	Clientes      *usecase.ClienteUseCase
	Empleados     *usecase.EmpleadoUseCase
	Usuarios      *usecase.UsuarioUseCase
	Proveedores   *usecase.ProveedorUseCase
	Personas      *usecase.PersonaUseCase
	Reconcile     *usecase.ReconcileUseCase

	Guard     *console.WriteGuard
	PDF       ports.ListPDFGenerator
	AdminRole string
}

// NewConsoleHandler construye el handler; sin Guard se crea uno propio.
func NewConsoleHandler(d ConsoleDeps) *ConsoleHandler {
	h := &ConsoleHandler{
		empresas:      d.Empresas,
		sucursales:    d.Sucursales,
		puntosEmision: d.PuntosEmision,
		roles:         d.Roles,
		tiposCliente:  d.TiposCliente,
		clientes:      d.Clientes,
		empleados:     d.Empleados,
		usuarios:      d.Usuarios,
		proveedores:   d.Proveedores,
		personas:      d.Personas,
		reconcile:     d.Reconcile,
		pdf:           d.PDF,
		adminRole:     d.AdminRole,
	}
	if d.Guard != nil {
		h.guard = d.Guard
	} else {
		h.guard = console.NewWriteGuard()
	}
	if h.adminRole == "" {
		h.adminRole = "admin"
	}
	return h
}

// Mount registra todas las rutas de la consola en el grupo protegido.
func (h *ConsoleHandler) Mount(g fiber.Router) {
	// rutas fijas antes que las de cada recurso
	g.Get("/personas/lookup", h.LookupPersona)
	g.Get("/puntos-emision/sucursales", h.SucursalesPorEmpresa)
	g.Get("/reconciliacion", h.PendingOrphans)
	g.Post("/reconciliacion", RequireRole(h.adminRole), h.RunReconcile)

	h.empresaResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.sucursalResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.puntoEmisionResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.rolResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.tipoClienteResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.clienteResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.empleadoResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.usuarioResource().mount(g, h.guard, h.pdf, h.adminRole)
	h.proveedorResource().mount(g, h.guard, h.pdf, h.adminRole)
}

func (h *ConsoleHandler) empresaResource() *resource[dto.EmpresaRequest, dto.EmpresaResponse] {
	uc := h.empresas
	return &resource[dto.EmpresaRequest, dto.EmpresaResponse]{
		name:  "empresas",
		title: "Empresas",
		flash: flashes{created: "Empresa creada correctamente", updated: "Empresa actualizada", deleted: "Empresa eliminada"},
		list:  uc.List,
		catalogs: map[string]console.CatalogFunc{
			"tiposContribuyente": uc.TipoContribuyenteCatalog,
		},
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "RUC", Size: 2}, {Header: "Razón social", Size: 4}, {Header: "Nombre comercial", Size: 3},
			{Header: "Teléfono", Size: 2}, {Header: "Activo", Size: 1},
		},
		row: func(e dto.EmpresaResponse) []string {
			return []string{e.RUC, e.RazonSocial, e.NombreComercial, e.Telefono, siNo(e.Activo)}
		},
	}
}

func (h *ConsoleHandler) sucursalResource() *resource[dto.SucursalRequest, dto.SucursalResponse] {
	uc := h.sucursales
	return &resource[dto.SucursalRequest, dto.SucursalResponse]{
		name:     "sucursales",
		title:    "Sucursales",
		flash:    flashes{created: "Sucursal creada correctamente", updated: "Sucursal actualizada", deleted: "Sucursal eliminada"},
		list:     uc.List,
		catalogs: map[string]console.CatalogFunc{"empresas": uc.EmpresaCatalog},
		create:   uc.Create,
		update:   uc.Update,
		remove:   uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "Código", Size: 2}, {Header: "Nombre", Size: 4}, {Header: "Dirección", Size: 4}, {Header: "Activo", Size: 2},
		},
		row: func(s dto.SucursalResponse) []string {
			return []string{s.Codigo, s.Nombre, s.Direccion, siNo(s.Activo)}
		},
	}
}

func (h *ConsoleHandler) puntoEmisionResource() *resource[dto.PuntoEmisionRequest, dto.PuntoEmisionResponse] {
	uc := h.puntosEmision
	return &resource[dto.PuntoEmisionRequest, dto.PuntoEmisionResponse]{
		name:  "puntos-emision",
		title: "Puntos de emisión",
		flash: flashes{created: "Punto de emision creado correctamente", updated: "Punto de emision actualizado", deleted: "Punto de emision eliminado"},
		list:  uc.List,
		catalogs: map[string]console.CatalogFunc{
			"empresas": uc.EmpresaCatalog,
			// todas las sucursales; el formulario filtra por empresa con /puntos-emision/sucursales
			"sucursales": func(ctx context.Context) ([]dto.CatalogOption, error) { return uc.SucursalCatalog(ctx, "") },
		},
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "Código", Size: 2}, {Header: "Descripción", Size: 6}, {Header: "Secuencial", Size: 2, Right: true}, {Header: "Activo", Size: 2},
		},
		row: func(p dto.PuntoEmisionResponse) []string {
			return []string{p.Codigo, p.Descripcion, strconv.Itoa(p.SecuencialActual), siNo(p.Activo)}
		},
	}
}

func (h *ConsoleHandler) rolResource() *resource[dto.RolRequest, dto.RolResponse] {
	uc := h.roles
	return &resource[dto.RolRequest, dto.RolResponse]{
		name:   "roles",
		title:  "Roles",
		flash:  flashes{created: "Rol creado correctamente", updated: "Rol actualizado", deleted: "Rol eliminado"},
		list:   uc.List,
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "Nombre", Size: 4}, {Header: "Descripción", Size: 8},
		},
		row: func(r dto.RolResponse) []string { return []string{r.Nombre, r.Descripcion} },
	}
}

func (h *ConsoleHandler) tipoClienteResource() *resource[dto.TipoClienteRequest, dto.TipoClienteResponse] {
	uc := h.tiposCliente
	return &resource[dto.TipoClienteRequest, dto.TipoClienteResponse]{
		name:   "tipos-cliente",
		title:  "Tipos de cliente",
		flash:  flashes{created: "Tipo de cliente creado correctamente", updated: "Tipo de cliente actualizado", deleted: "Tipo de cliente eliminado"},
		list:   uc.List,
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "Nombre", Size: 8}, {Header: "Descuento %", Size: 4, Right: true, Money: true},
		},
		row: func(t dto.TipoClienteResponse) []string {
			return []string{t.Nombre, t.Descuento.StringFixed(2)}
		},
	}
}

// personaColumns columnas de identificación seguidas de las propias del recurso.
func personaColumns(extra ...ports.ReportColumn) []ports.ReportColumn {
	cols := []ports.ReportColumn{{Header: "Identificación", Size: 2}, {Header: "Nombre", Size: 4}}
	return append(cols, extra...)
}

func (h *ConsoleHandler) clienteResource() *resource[dto.ClienteRequest, dto.ClienteResponse] {
	uc := h.clientes
	return &resource[dto.ClienteRequest, dto.ClienteResponse]{
		name:     "clientes",
		title:    "Clientes",
		flash:    flashes{created: "Cliente creado correctamente", updated: "Cliente actualizado", deleted: "Cliente eliminado"},
		list:     uc.List,
		catalogs: map[string]console.CatalogFunc{"tiposCliente": uc.TipoClienteCatalog},
		create:   uc.Create,
		update:   uc.Update,
		remove:   uc.Delete,
		columns: personaColumns(
			ports.ReportColumn{Header: "Email", Size: 3}, ports.ReportColumn{Header: "Tipo", Size: 2}, ports.ReportColumn{Header: "Activo", Size: 1}),
		row: func(cl dto.ClienteResponse) []string {
			return []string{cl.Identificacion, nombreCompleto(cl.PersonaFields), cl.Email, cl.TipoClienteNombre, siNo(cl.Activo)}
		},
	}
}

func (h *ConsoleHandler) empleadoResource() *resource[dto.EmpleadoRequest, dto.EmpleadoResponse] {
	uc := h.empleados
	return &resource[dto.EmpleadoRequest, dto.EmpleadoResponse]{
		name:     "empleados",
		title:    "Empleados",
		flash:    flashes{created: "Empleado creado correctamente", updated: "Empleado actualizado", deleted: "Empleado eliminado"},
		list:     uc.List,
		catalogs: map[string]console.CatalogFunc{"roles": uc.RolCatalog},
		create:   uc.Create,
		update:   uc.Update,
		remove:   uc.Delete,
		columns: personaColumns(
			ports.ReportColumn{Header: "Usuario", Size: 2}, ports.ReportColumn{Header: "Rol", Size: 2}, ports.ReportColumn{Header: "Salario", Size: 2, Right: true, Money: true}),
		row: func(e dto.EmpleadoResponse) []string {
			salario := ""
			if e.Salario != nil {
				salario = e.Salario.StringFixed(2)
			}
			return []string{e.PersonaIdentificacion, e.PersonaNombre, e.Username, e.RolNombre, salario}
		},
	}
}

func (h *ConsoleHandler) usuarioResource() *resource[dto.UsuarioRequest, dto.UsuarioResponse] {
	uc := h.usuarios
	return &resource[dto.UsuarioRequest, dto.UsuarioResponse]{
		name:  "usuarios",
		title: "Usuarios",
		flash: flashes{created: "Usuario creado correctamente", updated: "Usuario actualizado", deleted: "Usuario eliminado"},
		list:  uc.List,
		catalogs: map[string]console.CatalogFunc{
			"roles":    uc.RolCatalog,
			"personas": uc.PersonaCatalog,
		},
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		columns: []ports.ReportColumn{
			{Header: "Usuario", Size: 3}, {Header: "Persona", Size: 4}, {Header: "Rol", Size: 3}, {Header: "Activo", Size: 2},
		},
		row: func(u dto.UsuarioResponse) []string {
			return []string{u.Username, u.PersonaNombre, u.RolNombre, siNo(u.Activo)}
		},
	}
}

func (h *ConsoleHandler) proveedorResource() *resource[dto.ProveedorRequest, dto.ProveedorResponse] {
	uc := h.proveedores
	return &resource[dto.ProveedorRequest, dto.ProveedorResponse]{
		name:     "proveedores",
		title:    "Proveedores",
		flash:    flashes{created: "Proveedor creado correctamente", updated: "Proveedor actualizado", deleted: "Proveedor eliminado"},
		list:     uc.List,
		catalogs: map[string]console.CatalogFunc{"tiposContribuyente": uc.TipoContribuyenteCatalog},
		create:   uc.Create,
		update:   uc.Update,
		remove:   uc.Delete,
		columns: personaColumns(
			ports.ReportColumn{Header: "Nombre comercial", Size: 3}, ports.ReportColumn{Header: "Contribuyente", Size: 2}, ports.ReportColumn{Header: "Activo", Size: 1}),
		row: func(p dto.ProveedorResponse) []string {
			return []string{p.Identificacion, nombreCompleto(p.PersonaFields), p.NombreComercial, p.TipoContribuyenteNombre, siNo(p.Activo)}
		},
	}
}

// LookupPersona godoc
// @Summary      Buscar persona por identificación
// @Description  Devuelve null si no existe o si el backend falla; el formulario sigue como alta nueva.
// @Tags         consola
// @Produce      json
// @Param        identificacion  query  string  true  "Cédula / RUC / pasaporte"
// @Success      200  {object}  dto.PersonaResponse
// @Security     BearerAuth
// @Router       /api/console/personas/lookup [get]
func (h *ConsoleHandler) LookupPersona(c *fiber.Ctx) error {
	p := h.personas.Lookup(c.UserContext(), c.Query("identificacion"))
	if p == nil {
		return c.Type("json").SendString("null")
	}
	return c.JSON(p)
}

// SucursalesPorEmpresa godoc
// @Summary      Sucursales de una empresa
// @Tags         consola
// @Produce      json
// @Param        empresaId  query  string  true  "ID de la empresa"
// @Success      200  {array}  dto.CatalogOption
// @Failure      502  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/console/puntos-emision/sucursales [get]
func (h *ConsoleHandler) SucursalesPorEmpresa(c *fiber.Ctx) error {
	opts, err := h.puntosEmision.SucursalCatalog(c.UserContext(), c.Query("empresaId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(opts)
}

// PendingOrphans godoc
// @Summary      Personas huérfanas pendientes de conciliación
// @Tags         consola
// @Produce      json
// @Param        limit  query  int  false  "máximo de registros (default 100)"
// @Success      200  {array}  dto.OrphanPersonaResponse
// @Security     BearerAuth
// @Router       /api/console/reconciliacion [get]
func (h *ConsoleHandler) PendingOrphans(c *fiber.Ctx) error {
	out, err := h.reconcile.Pending(c.UserContext(), c.QueryInt("limit", usecase.DefaultReconcileBatch))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RunReconcile godoc
// @Summary      Ejecutar una pasada de conciliación
// @Description  Reintenta borrar cada persona huérfana pendiente. Solo rol admin.
// @Tags         consola
// @Produce      json
// @Param        limit  query  int  false  "máximo de registros (default 100)"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/console/reconciliacion [post]
func (h *ConsoleHandler) RunReconcile(c *fiber.Ctx) error {
	release, err := h.guard.Acquire(GetUsername(c), "reconciliacion")
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	out, err := h.reconcile.Run(c.UserContext(), c.QueryInt("limit", usecase.DefaultReconcileBatch))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func nombreCompleto(p dto.PersonaFields) string {
	return entity.Identidad{Nombre: p.Nombre, Apellido: p.Apellido}.NombreCompleto()
}

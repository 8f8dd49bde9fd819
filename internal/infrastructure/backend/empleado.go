package backend

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const empleadosPath = "/api/empleados"

var empleadoFields = fieldNames{
	"persona_id":       "personaId",
	"salario":          "salario",
	"fecha_ingreso":    "fechaIngreso",
	"fecha_nacimiento": "fechaNacimiento",
	"fecha_salida":     "fechaSalida",
	"username":         "username",
	"password":         "password",
	"rol_id":           "rolId",
}

type empleadoUsuarioWire struct {
	Username *string     `json:"username"`
	RolID    *flexID     `json:"rol_id"`
	Rol      *nombreWire `json:"rol"`
}

type empleadoWire struct {
	ID              *flexID              `json:"id"`
	PersonaID       *flexID              `json:"persona_id"`
	Persona         *personaWire         `json:"persona"`
	Salario         *decimal.Decimal     `json:"salario"`
	FechaIngreso    *string              `json:"fecha_ingreso"`
	FechaNacimiento *string              `json:"fecha_nacimiento"`
	FechaSalida     *string              `json:"fecha_salida"`
	RolID           *flexID              `json:"rol_id"`
	Usuario         *empleadoUsuarioWire `json:"usuario"`
	Activo          *bool                `json:"activo"`
}

func (w empleadoWire) toEntity(fb entity.Empleado) entity.Empleado {
	out := fb
	out.Password = ""
	out.ID = pickID(w.ID, fb.ID)
	out.PersonaID = pickID(w.PersonaID, fb.PersonaID)
	if w.Salario != nil {
		s := *w.Salario
		out.Salario = &s
	}
	out.FechaIngreso = pick(w.FechaIngreso, fb.FechaIngreso)
	out.FechaNacimiento = pick(w.FechaNacimiento, fb.FechaNacimiento)
	out.FechaSalida = pick(w.FechaSalida, fb.FechaSalida)
	out.RolID = pickID(w.RolID, fb.RolID)
	out.Activo = pickBool(w.Activo, fb.Activo)

	if u := w.Usuario; u != nil {
		out.Username = pick(u.Username, fb.Username)
		out.RolID = pickID(u.RolID, out.RolID)
		if u.Rol != nil && u.Rol.Nombre != nil && *u.Rol.Nombre != "" {
			out.RolNombre = *u.Rol.Nombre
		}
	}
	if p := w.Persona; p != nil {
		if out.PersonaID == "" {
			out.PersonaID = pickID(p.ID, "")
		}
		out.Identidad = p.identidad(fb.Identidad)
		out.PersonaIdentificacion = pick(p.Identificacion, fb.PersonaIdentificacion)
		if n := p.nombreCompleto(); n != "" {
			out.PersonaNombre = n
		}
	}
	return out
}

// EmpleadoAdapter implementa repository.EmpleadoRepository: persona, empleado y su usuario anidado.
type EmpleadoAdapter struct {
	base
	personas *PersonaGateway
	roles    *RolAdapter
}

var _ repository.EmpleadoRepository = (*EmpleadoAdapter)(nil)

// NewEmpleadoAdapter construye el adaptador.
func NewEmpleadoAdapter(opts Options) *EmpleadoAdapter {
	return &EmpleadoAdapter{
		base:     newBase(opts, empleadoFields, lastSegment, "empleados"),
		personas: opts.Personas,
		roles:    NewRolAdapter(opts),
	}
}

// List empleados activos. Empleados y personas se piden en paralelo y se unen por persona_id
// cuando el empleado no trae la persona embebida.
func (a *EmpleadoAdapter) List(ctx context.Context) ([]entity.Empleado, error) {
	var (
		rows     []empleadoWire
		personas map[string]*personaWire
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = getList[empleadoWire](gctx, a.client, empleadosPath, nil)
		return a.norm.normalize(err)
	})
	g.Go(func() error {
		var err error
		personas, err = a.personas.activeByID(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entity.Empleado, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		if w.Persona == nil {
			w.Persona = personas[pickID(w.PersonaID, "")]
		}
		out = append(out, w.toEntity(entity.Empleado{Activo: true}))
	}
	return out, nil
}

func (a *EmpleadoAdapter) Create(ctx context.Context, e entity.Empleado) (*entity.Empleado, error) {
	return a.write(ctx, "", e)
}

func (a *EmpleadoAdapter) Update(ctx context.Context, id string, e entity.Empleado) (*entity.Empleado, error) {
	e.ID = id
	return a.write(ctx, id, e)
}

func (a *EmpleadoAdapter) write(ctx context.Context, id string, e entity.Empleado) (*entity.Empleado, error) {
	audit := a.audit(e.UsuarioAuditoria)
	var res empleadoWire
	personaID, err := a.personas.upsert(ctx, personaWrite{
		PersonaID: e.PersonaID,
		Identidad: e.Identidad,
		AuditUser: audit,
		Activo:    e.Activo,
		Recurso:   empleadosPath,
	}, a.norm, func(ctx context.Context, ref personaRef) error {
		usuario := sanitize(payload{
			"username":          e.Username,
			"password":          e.Password,
			"rol_id":            e.RolID,
			"usuario_auditoria": audit,
		})
		body := payload{
			"persona_id":        ref.value,
			"fecha_ingreso":     e.FechaIngreso,
			"fecha_nacimiento":  e.FechaNacimiento,
			"fecha_salida":      e.FechaSalida,
			"usuario":           usuario,
			"usuario_auditoria": audit,
		}
		if e.Salario != nil {
			body["salario"] = decimalValue(*e.Salario)
		}
		body = sanitize(body)
		var err error
		if id == "" {
			err = a.client.Post(ctx, empleadosPath, body, &res)
		} else {
			err = a.client.Put(ctx, resourcePath(empleadosPath, id), body, &res)
		}
		return a.norm.normalize(err)
	})
	if err != nil {
		return nil, err
	}
	e.PersonaID = personaID
	e.PersonaNombre = e.NombreCompleto()
	e.PersonaIdentificacion = e.Identificacion
	e.UsuarioAuditoria = audit
	out := res.toEntity(e)
	return &out, nil
}

func (a *EmpleadoAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(empleadosPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

func (a *EmpleadoAdapter) FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona {
	return a.personas.FindPersonaByIdentificacion(ctx, identificacion)
}

func (a *EmpleadoAdapter) RolCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.roles.catalog(ctx)
}

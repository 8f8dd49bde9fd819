package backend

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

const usuariosPath = "/api/usuarios"

var usuarioFields = fieldNames{
	"persona_id":               "personaId",
	"rol_id":                   "rolId",
	"username":                 "username",
	"password":                 "password",
	"requiere_cambio_password": "requiereCambioPassword",
}

type usuarioWire struct {
	ID                     *flexID      `json:"id"`
	PersonaID              *flexID      `json:"persona_id"`
	Persona                *personaWire `json:"persona"`
	RolID                  *flexID      `json:"rol_id"`
	Rol                    *nombreWire  `json:"rol"`
	Username               *string      `json:"username"`
	RequiereCambioPassword *bool        `json:"requiere_cambio_password"`
	Activo                 *bool        `json:"activo"`
}

func (w usuarioWire) toEntity(fb entity.Usuario) entity.Usuario {
	out := fb
	out.Password = ""
	out.ID = pickID(w.ID, fb.ID)
	out.PersonaID = pickID(w.PersonaID, fb.PersonaID)
	out.RolID = pickID(w.RolID, fb.RolID)
	out.Username = pick(w.Username, fb.Username)
	if w.RequiereCambioPassword != nil {
		v := *w.RequiereCambioPassword
		out.RequiereCambioPassword = &v
	}
	out.Activo = pickBool(w.Activo, fb.Activo)
	if n := w.Persona.nombreCompleto(); n != "" {
		out.PersonaNombre = n
	}
	if w.Persona != nil {
		out.Identidad = w.Persona.identidad(fb.Identidad)
	}
	if w.Rol != nil && w.Rol.Nombre != nil && *w.Rol.Nombre != "" {
		out.RolNombre = *w.Rol.Nombre
	}
	return out
}

// UsuarioAdapter implementa repository.UsuarioRepository.
type UsuarioAdapter struct {
	base
	personas *PersonaGateway
	roles    *RolAdapter
}

var _ repository.UsuarioRepository = (*UsuarioAdapter)(nil)

// NewUsuarioAdapter construye el adaptador.
func NewUsuarioAdapter(opts Options) *UsuarioAdapter {
	return &UsuarioAdapter{
		base:     newBase(opts, usuarioFields, lastSegment, "usuarios"),
		personas: opts.Personas,
		roles:    NewRolAdapter(opts),
	}
}

// List usuarios activos.
func (a *UsuarioAdapter) List(ctx context.Context) ([]entity.Usuario, error) {
	rows, err := getList[usuarioWire](ctx, a.client, usuariosPath, nil)
	if err != nil {
		return nil, a.norm.normalize(err)
	}
	out := make([]entity.Usuario, 0, len(rows))
	for _, w := range rows {
		if !isActive(w.Activo) {
			continue
		}
		out = append(out, w.toEntity(entity.Usuario{Activo: true}))
	}
	return out, nil
}

// Create en el alta requiere_cambio_password vale true si no se indica.
func (a *UsuarioAdapter) Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error) {
	if u.RequiereCambioPassword == nil {
		v := true
		u.RequiereCambioPassword = &v
	}
	return a.write(ctx, "", u)
}

// Update la contraseña solo se envía si viene informada.
func (a *UsuarioAdapter) Update(ctx context.Context, id string, u entity.Usuario) (*entity.Usuario, error) {
	u.ID = id
	return a.write(ctx, id, u)
}

func (a *UsuarioAdapter) write(ctx context.Context, id string, u entity.Usuario) (*entity.Usuario, error) {
	audit := a.audit(u.UsuarioAuditoria)
	var res usuarioWire
	personaID, err := a.personas.upsert(ctx, personaWrite{
		PersonaID: u.PersonaID,
		Identidad: u.Identidad,
		AuditUser: audit,
		Activo:    u.Activo,
		Recurso:   usuariosPath,
	}, a.norm, func(ctx context.Context, ref personaRef) error {
		body := payload{
			"persona_id":        ref.value,
			"rol_id":            u.RolID,
			"username":          u.Username,
			"password":          u.Password,
			"usuario_auditoria": audit,
		}
		if u.RequiereCambioPassword != nil {
			body["requiere_cambio_password"] = *u.RequiereCambioPassword
		}
		body = sanitize(body)
		var err error
		if id == "" {
			err = a.client.Post(ctx, usuariosPath, body, &res)
		} else {
			err = a.client.Put(ctx, resourcePath(usuariosPath, id), body, &res)
		}
		return a.norm.normalize(err)
	})
	if err != nil {
		return nil, err
	}
	u.PersonaID = personaID
	u.PersonaNombre = u.NombreCompleto()
	u.UsuarioAuditoria = audit
	out := res.toEntity(u)
	return &out, nil
}

func (a *UsuarioAdapter) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, resourcePath(usuariosPath, id)); err != nil {
		return a.norm.normalize(err)
	}
	return nil
}

func (a *UsuarioAdapter) FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona {
	return a.personas.FindPersonaByIdentificacion(ctx, identificacion)
}

func (a *UsuarioAdapter) RolCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.roles.catalog(ctx)
}

func (a *UsuarioAdapter) PersonaCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	return a.personas.catalog(ctx)
}

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

const personasPath = "/api/personas"

// compensationTimeout tiempo máximo del DELETE compensatorio, independiente del request original.
const compensationTimeout = 5 * time.Second

var personaFields = fieldNames{
	"tipo_identificacion": "tipoIdentificacion",
	"usuario_auditoria":   "usuarioAuditoria",
}

// PersonaGateway acceso al recurso Persona: alta/actualización previa a la entidad,
// compensación de personas huérfanas y búsqueda por identificación.
type PersonaGateway struct {
	client *Client
	ledger repository.OrphanPersonaRepository
	norm   errorNormalizer
	log    *logger.Logger
}

var _ repository.PersonaRepository = (*PersonaGateway)(nil)

// NewPersonaGateway construye el gateway. ledger puede ser nil: las huérfanas solo se registran en el log.
func NewPersonaGateway(client *Client, ledger repository.OrphanPersonaRepository, log *logger.Logger) *PersonaGateway {
	if log == nil {
		log = logger.Nop()
	}
	return &PersonaGateway{
		client: client,
		ledger: ledger,
		norm:   newNormalizer(personaFields, lastSegment),
		log:    log.Component("personas"),
	}
}

// personaWrite datos del paso 1 del alta con persona.
type personaWrite struct {
	PersonaID string
	Identidad entity.Identidad
	AuditUser string
	Activo    bool
	Recurso   string // endpoint de la entidad dueña, para el registro de huérfanas
}

// upsert resuelve la persona (PUT si hay personaId, POST si no) y luego ejecuta write con el id.
// Un fallo en el paso 1 aborta sin escribir la entidad. Si la persona se creó aquí y write falla,
// se intenta eliminarla; si tampoco se puede, queda registrada como huérfana.
// norm normaliza los errores del paso 1 con el diccionario de la entidad.
func (g *PersonaGateway) upsert(
	ctx context.Context,
	in personaWrite,
	norm errorNormalizer,
	write func(ctx context.Context, ref personaRef) error,
) (string, error) {
	ref := personaRef{ID: strings.TrimSpace(in.PersonaID)}
	created := false

	if ref.ID != "" {
		ref.value = ref.ID
		body := personaPayload(ref.ID, in.Identidad, in.AuditUser, in.Activo)
		if err := g.client.Put(ctx, resourcePath(personasPath, ref.ID), body, nil); err != nil {
			return "", norm.normalize(err)
		}
	} else {
		body := personaPayload("", in.Identidad, in.AuditUser, in.Activo)
		var res struct {
			ID json.RawMessage `json:"id"`
		}
		if err := g.client.Post(ctx, personasPath, body, &res); err != nil {
			return "", norm.normalize(err)
		}
		ref = refFromJSON(res.ID)
		created = true
	}

	if err := write(ctx, ref); err != nil {
		if created {
			g.compensate(ctx, ref.ID, in, err)
		}
		return ref.ID, err
	}
	return ref.ID, nil
}

// personaRef id de la persona resuelta. value conserva el tipo JSON devuelto por el backend
// (número o texto) para enviarlo igual en persona_id; nil si no hubo id.
type personaRef struct {
	ID    string
	value any
}

func refFromJSON(raw json.RawMessage) personaRef {
	var id flexID
	if len(raw) == 0 || id.UnmarshalJSON(raw) != nil || id == "" {
		return personaRef{}
	}
	if raw[0] == '"' {
		return personaRef{ID: string(id), value: string(id)}
	}
	return personaRef{ID: string(id), value: json.Number(id)}
}

// compensate elimina la persona recién creada; si no puede, la registra como huérfana.
func (g *PersonaGateway) compensate(ctx context.Context, personaID string, in personaWrite, cause error) {
	if personaID == "" {
		g.log.Warn().Str("recurso", in.Recurso).Msg("la persona creada no devolvió id, no se puede compensar")
		return
	}
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	err := g.Delete(cctx, personaID)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		g.log.Info().Str("persona_id", personaID).Str("recurso", in.Recurso).Msg("persona compensada tras fallo de la entidad")
		return
	}

	g.log.Error().Err(err).Str("persona_id", personaID).Str("recurso", in.Recurso).Msg("no se pudo compensar la persona, queda huérfana")
	if g.ledger == nil {
		return
	}
	now := time.Now().UTC()
	orphan := &entity.OrphanPersona{
		ID:             uuid.New().String(),
		PersonaID:      personaID,
		Identificacion: in.Identidad.Identificacion,
		Recurso:        in.Recurso,
		Motivo:         cause.Error(),
		Intentos:       1,
		UltimoError:    err.Error(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if rerr := g.ledger.Record(cctx, orphan); rerr != nil {
		g.log.Error().Err(rerr).Str("persona_id", personaID).Msg("no se pudo registrar la persona huérfana")
	}
}

// Delete DELETE /api/personas/:id.
func (g *PersonaGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.Delete(ctx, resourcePath(personasPath, id)); err != nil {
		return g.norm.normalize(err)
	}
	return nil
}

// List devuelve todas las personas del backend.
func (g *PersonaGateway) List(ctx context.Context) ([]entity.Persona, error) {
	rows, err := g.listWire(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Persona, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (g *PersonaGateway) listWire(ctx context.Context) ([]personaWire, error) {
	rows, err := getList[personaWire](ctx, g.client, personasPath, nil)
	if err != nil {
		return nil, g.norm.normalize(err)
	}
	return rows, nil
}

// activeByID índice de personas activas por id, para unir listados que no embeben la persona.
func (g *PersonaGateway) activeByID(ctx context.Context) (map[string]*personaWire, error) {
	rows, err := g.listWire(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*personaWire, len(rows))
	for i := range rows {
		if !isActive(rows[i].Activo) {
			continue
		}
		if id := pickID(rows[i].ID, ""); id != "" {
			idx[id] = &rows[i]
		}
	}
	return idx, nil
}

// FindPersonaByIdentificacion consulta ?identificacion=X y busca coincidencia exacta.
// Si la consulta filtrada falla, recorre el listado completo. Cualquier fallo devuelve nil.
func (g *PersonaGateway) FindPersonaByIdentificacion(ctx context.Context, identificacion string) *entity.Persona {
	ident := strings.TrimSpace(identificacion)
	if ident == "" {
		return nil
	}
	rows, err := getList[personaWire](ctx, g.client, personasPath, url.Values{"identificacion": {ident}})
	if err != nil {
		g.log.Debug().Err(err).Msg("búsqueda filtrada de persona fallida, se recorre el listado completo")
		rows, err = getList[personaWire](ctx, g.client, personasPath, nil)
		if err != nil {
			g.log.Debug().Err(err).Msg("búsqueda de persona sin resultado")
			return nil
		}
	}
	for i := range rows {
		if pick(rows[i].Identificacion, "") == ident {
			p := rows[i].toEntity()
			return &p
		}
	}
	return nil
}

// catalog personas activas: etiqueta "nombre apellido", la identificación o "Persona".
func (g *PersonaGateway) catalog(ctx context.Context) ([]entity.CatalogOption, error) {
	rows, err := g.listWire(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]entity.CatalogOption, 0, len(rows))
	for i := range rows {
		if !isActive(rows[i].Activo) {
			continue
		}
		p := rows[i].toEntity()
		label := p.NombreCompleto()
		if label == "" {
			label = p.Identificacion
		}
		if label == "" {
			label = "Persona"
		}
		opts = append(opts, entity.CatalogOption{Value: p.ID, Label: label, Extra: p.Identificacion})
	}
	return sortOptions(opts), nil
}

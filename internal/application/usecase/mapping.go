package usecase

import (
	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

func toCatalogOptions(list []entity.CatalogOption) []dto.CatalogOption {
	out := make([]dto.CatalogOption, 0, len(list))
	for _, o := range list {
		out = append(out, dto.CatalogOption{Value: o.Value, Label: o.Label, Extra: o.Extra})
	}
	return out
}

func identidadFromInput(in dto.PersonaInput) entity.Identidad {
	return entity.Identidad{
		Identificacion:     in.Identificacion,
		TipoIdentificacion: in.TipoIdentificacion,
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		Direccion:          in.Direccion,
		Telefono:           in.Telefono,
		Ciudad:             in.Ciudad,
		Email:              in.Email,
	}
}

func personaFields(personaID string, i entity.Identidad) dto.PersonaFields {
	return dto.PersonaFields{
		PersonaID:          personaID,
		Identificacion:     i.Identificacion,
		TipoIdentificacion: i.TipoIdentificacion,
		Nombre:             i.Nombre,
		Apellido:           i.Apellido,
		Direccion:          i.Direccion,
		Telefono:           i.Telefono,
		Ciudad:             i.Ciudad,
		Email:              i.Email,
	}
}

func entityToPersonaResponse(p *entity.Persona) *dto.PersonaResponse {
	if p == nil {
		return nil
	}
	return &dto.PersonaResponse{
		ID:                 p.ID,
		Identificacion:     p.Identificacion,
		TipoIdentificacion: p.TipoIdentificacion,
		Nombre:             p.Nombre,
		Apellido:           p.Apellido,
		Direccion:          p.Direccion,
		Telefono:           p.Telefono,
		Ciudad:             p.Ciudad,
		Email:              p.Email,
		UsuarioAuditoria:   p.UsuarioAuditoria,
		Activo:             p.Activo,
	}
}

// mapList convierte un listado de entidades a sus respuestas.
func mapList[E, R any](list []E, fn func(*E) *R) []R {
	out := make([]R, 0, len(list))
	for i := range list {
		out = append(out, *fn(&list[i]))
	}
	return out
}

package backend

import (
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// Options dependencias comunes de los adaptadores.
type Options struct {
	Client    *Client
	Personas  *PersonaGateway // solo entidades con persona
	AuditUser string          // usuario_auditoria por defecto
	Logger    *logger.Logger
}

type base struct {
	client    *Client
	auditUser string
	norm      errorNormalizer
	log       *logger.Logger
}

func newBase(opts Options, names fieldNames, strategy locStrategy, component string) base {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return base{
		client:    opts.Client,
		auditUser: orDefault(opts.AuditUser, "frontend"),
		norm:      newNormalizer(names, strategy),
		log:       log.Component(component),
	}
}

func (b base) audit(s string) string {
	return orDefault(s, b.auditUser)
}

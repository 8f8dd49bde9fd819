package entity

import "strings"

// Identidad datos de identificación y contacto de una persona.
// Se embebe en todas las entidades respaldadas por una Persona.
type Identidad struct {
	Identificacion     string // número de cédula, RUC o pasaporte; clave natural de búsqueda
	TipoIdentificacion string // CEDULA, RUC, PASAPORTE
	Nombre             string
	Apellido           string
	Direccion          string
	Telefono           string
	Ciudad             string
	Email              string
}

// NombreCompleto "nombre apellido" sin espacios sobrantes.
func (i Identidad) NombreCompleto() string {
	return strings.TrimSpace(i.Nombre + " " + i.Apellido)
}

// Persona recurso compartido del backend, referenciado por clientes, empleados, usuarios y proveedores.
type Persona struct {
	ID string
	Identidad
	UsuarioAuditoria string
	Activo           bool
}

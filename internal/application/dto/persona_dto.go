package dto

// PersonaInput campos de identificación de los formularios con persona.
// Los requeridos solo se validan cuando el caso de uso lo pide (p. ej. sin personaId).
type PersonaInput struct {
	PersonaID          string `json:"personaId"`
	Identificacion     string `json:"identificacion" validate:"required"`
	TipoIdentificacion string `json:"tipoIdentificacion" validate:"required"`
	Nombre             string `json:"nombre" validate:"required"`
	Apellido           string `json:"apellido" validate:"required"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	Ciudad             string `json:"ciudad"`
	Email              string `json:"email"`
}

// PersonaFields campos de persona en las respuestas de entidades con persona.
type PersonaFields struct {
	PersonaID          string `json:"personaId"`
	Identificacion     string `json:"identificacion"`
	TipoIdentificacion string `json:"tipoIdentificacion"`
	Nombre             string `json:"nombre"`
	Apellido           string `json:"apellido"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	Ciudad             string `json:"ciudad"`
	Email              string `json:"email"`
}

// PersonaResponse resultado de la búsqueda por identificación.
type PersonaResponse struct {
	ID                 string `json:"id"`
	Identificacion     string `json:"identificacion"`
	TipoIdentificacion string `json:"tipoIdentificacion"`
	Nombre             string `json:"nombre"`
	Apellido           string `json:"apellido"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	Ciudad             string `json:"ciudad"`
	Email              string `json:"email"`
	UsuarioAuditoria   string `json:"usuarioAuditoria"`
	Activo             bool   `json:"activo"`
}

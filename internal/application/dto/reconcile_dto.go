package dto

import "time"

// OrphanPersonaResponse persona huérfana pendiente de conciliación.
type OrphanPersonaResponse struct {
	ID             string    `json:"id"`
	PersonaID      string    `json:"personaId"`
	Identificacion string    `json:"identificacion"`
	Recurso        string    `json:"recurso"`
	Motivo         string    `json:"motivo"`
	Intentos       int       `json:"intentos"`
	UltimoError    string    `json:"ultimoError,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReconcileResponse resultado de una pasada de conciliación.
type ReconcileResponse struct {
	Revisadas  int                     `json:"revisadas"`
	Resueltas  int                     `json:"resueltas"`
	Fallidas   int                     `json:"fallidas"`
	Pendientes []OrphanPersonaResponse `json:"pendientes"`
}

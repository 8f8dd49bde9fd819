package entity

// Empresa representa la empresa emisora (RUC, razón social, establecimiento matriz).
type Empresa struct {
	ID                    string
	RazonSocial           string
	NombreComercial       string
	RUC                   string
	DireccionMatriz       string
	Telefono              string
	CodigoEstablecimiento string
	ObligadoContabilidad  bool
	TipoContribuyenteID   string
	UsuarioAuditoria      string
	Activo                bool
}

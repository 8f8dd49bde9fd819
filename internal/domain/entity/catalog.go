package entity

// CatalogOption par valor/etiqueta para poblar un selector del formulario.
type CatalogOption struct {
	Value string
	Label string
	Extra string // dato secundario (p. ej. la identificación de una persona)
}

// TiposContribuyente catálogo estático mientras el backend no expone aux_tipo_contribuyente.
var TiposContribuyente = []CatalogOption{
	{Value: "01", Label: "Persona Natural"},
	{Value: "02", Label: "Sociedad"},
	{Value: "03", Label: "RIMPE – Negocio Popular"},
	{Value: "04", Label: "RIMPE – Emprendedor"},
	{Value: "05", Label: "Gran Contribuyente"},
}

// TipoContribuyenteLabel devuelve la etiqueta del código o el propio código si no existe.
func TipoContribuyenteLabel(code string) string {
	for _, o := range TiposContribuyente {
		if o.Value == code {
			return o.Label
		}
	}
	return code
}

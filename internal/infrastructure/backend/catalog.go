package backend

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// sortOptions descarta opciones sin valor y ordena por etiqueta con intercalación española.
func sortOptions(opts []entity.CatalogOption) []entity.CatalogOption {
	out := make([]entity.CatalogOption, 0, len(opts))
	for _, o := range opts {
		if o.Value != "" {
			out = append(out, o)
		}
	}
	col := collate.New(language.Spanish, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Label, out[j].Label) < 0
	})
	return out
}

// staticTiposContribuyente copia del catálogo estático de tipos de contribuyente.
func staticTiposContribuyente() []entity.CatalogOption {
	out := make([]entity.CatalogOption, len(entity.TiposContribuyente))
	copy(out, entity.TiposContribuyente)
	return out
}

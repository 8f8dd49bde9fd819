package console

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/consola-admin/internal/application/dto"
)

// CatalogFunc carga las opciones de un selector del formulario.
type CatalogFunc func(ctx context.Context) ([]dto.CatalogOption, error)

// LoadPage carga el listado y los catálogos de una página en paralelo.
// El primer fallo deja la página vacía con su mensaje en ListError (no es un error HTTP).
// Si la petición ya no existe devuelve ctx.Err() y el resultado se descarta.
func LoadPage[T any](ctx context.Context, list func(context.Context) ([]T, error), catalogs map[string]CatalogFunc) (*dto.PageResponse[T], error) {
	var (
		items []T
		mu    sync.Mutex
		cats  = make(map[string][]dto.CatalogOption, len(catalogs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := list(gctx)
		if err != nil {
			return err
		}
		items = out
		return nil
	})
	for name, load := range catalogs {
		g.Go(func() error {
			opts, err := load(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			cats[name] = opts
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	page := &dto.PageResponse[T]{Items: items}
	if err != nil {
		page.Items = nil
		page.ListError = err.Error()
		cats = nil
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	if len(cats) > 0 {
		page.Catalogs = cats
	}
	return page, nil
}

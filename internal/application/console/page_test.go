package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
)

func listOf(items ...string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) { return items, nil }
}

func catalogOf(opts ...dto.CatalogOption) CatalogFunc {
	return func(context.Context) ([]dto.CatalogOption, error) { return opts, nil }
}

func TestLoadPage_ListadoYCatalogos(t *testing.T) {
	page, err := LoadPage(context.Background(), listOf("a", "b"), map[string]CatalogFunc{
		"roles":    catalogOf(dto.CatalogOption{Value: "1", Label: "Admin"}),
		"personas": catalogOf(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, page.Items)
	assert.Empty(t, page.ListError)
	assert.Len(t, page.Catalogs, 2)
	assert.Equal(t, "Admin", page.Catalogs["roles"][0].Label)
}

func TestLoadPage_FalloDelListado(t *testing.T) {
	failing := func(context.Context) ([]string, error) { return nil, errors.New("Network Error") }
	page, err := LoadPage(context.Background(), failing, map[string]CatalogFunc{"roles": catalogOf()})
	require.NoError(t, err)
	assert.Equal(t, "Network Error", page.ListError)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Catalogs)
}

func TestLoadPage_FalloDeUnCatalogo(t *testing.T) {
	page, err := LoadPage(context.Background(), listOf("a"), map[string]CatalogFunc{
		"empresas": func(context.Context) ([]dto.CatalogOption, error) { return nil, errors.New("timeout") },
	})
	require.NoError(t, err)
	assert.Equal(t, "timeout", page.ListError)
	assert.Empty(t, page.Items)
}

func TestLoadPage_SinCatalogos(t *testing.T) {
	page, err := LoadPage(context.Background(), listOf(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, page.Items)
	assert.Nil(t, page.Catalogs)
}

func TestLoadPage_PeticionCancelada(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	list := func(context.Context) ([]string, error) {
		cancel()
		return []string{"tarde"}, nil
	}
	page, err := LoadPage(ctx, list, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, page)
}

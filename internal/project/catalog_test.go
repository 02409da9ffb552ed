package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallHang/internal/model"
)

func TestLoadCatalogCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.json")

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, len(model.DefaultCatalog().Sizes), len(cat.Sizes))

	_, err = os.Stat(path)
	assert.NoError(t, err, "default catalog should be written to disk")
}

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	cat := model.Catalog{Sizes: []model.CatalogSize{model.NewCatalogSize("Square", "60x60", model.Portrait)}}

	require.NoError(t, SaveCatalog(path, cat))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, loaded.Sizes, 1)
	assert.Equal(t, cat.Sizes[0], loaded.Sizes[0])
}

func TestImportCatalogMergesAndSkipsInvalid(t *testing.T) {
	existing := model.Catalog{Sizes: []model.CatalogSize{model.NewCatalogSize("Square", "60x60", model.Portrait)}}
	incoming := model.Catalog{Sizes: []model.CatalogSize{
		existing.Sizes[0],
		model.NewCatalogSize("Tall", "20x80", model.Portrait),
		model.NewCatalogSize("Broken", "wide", model.Portrait),
	}}
	data, err := json.Marshal(incoming)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	merged, added, err := ImportCatalog(path, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"Square", "Tall"}, merged.Names())
}

func TestImportCatalogMissingFile(t *testing.T) {
	existing := model.DefaultCatalog()
	merged, added, err := ImportCatalog(filepath.Join(t.TempDir(), "nope.json"), existing)
	assert.Error(t, err)
	assert.Zero(t, added)
	assert.Equal(t, len(existing.Sizes), len(merged.Sizes))
}

func TestImportCatalogReplacesMalformedIDs(t *testing.T) {
	incoming := model.Catalog{Sizes: []model.CatalogSize{
		{ID: "legacy-1", Name: "Poster", Size: "50x70", Orientation: model.Portrait},
	}}
	data, err := json.Marshal(incoming)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	merged, added, err := ImportCatalog(path, model.Catalog{})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	require.Len(t, merged.Sizes, 1)
	assert.NoError(t, model.ValidateID(merged.Sizes[0].ID, model.PrefixCatalog))
	assert.Equal(t, "Poster", merged.Sizes[0].Name)
}

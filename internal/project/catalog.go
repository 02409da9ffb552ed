package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/WallHang/internal/model"
)

// DefaultCatalogPath returns the default file path for the frame size catalog.
// This is located at ~/.wallhang/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	if cat.Sizes == nil {
		cat.Sizes = []model.CatalogSize{}
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default sizes.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path := DefaultCatalogPath()
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ImportCatalog reads a catalog from a user-specified JSON file and merges
// it into existing. Sizes whose ID is already present, or whose size label
// does not parse, are skipped. Sizes with a malformed ID get a fresh one.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, 0, fmt.Errorf("failed to read catalog: %w", err)
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, 0, fmt.Errorf("failed to parse catalog: %w", err)
	}

	valid := imported.Sizes[:0]
	for _, s := range imported.Sizes {
		if _, err := model.ParseSize(s.Size); err != nil {
			continue
		}
		if model.ValidateID(s.ID, model.PrefixCatalog) != nil {
			s.ID = model.NewCatalogID()
		}
		valid = append(valid, s)
	}
	imported.Sizes = valid

	added := existing.Merge(imported)
	return existing, added, nil
}

package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/telagraphic/sfx-board/internal/config"
)

// LoadCatalog reads and parses the catalog file. A document without a
// "clips" list is rejected: appending to a catalog that was never there
// would silently mint a new one.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Clips *[]Clip `json:"clips"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if raw.Clips == nil {
		return nil, fmt.Errorf("catalog %s has no \"clips\" list", path)
	}

	return &Catalog{Clips: *raw.Clips}, nil
}

// WriteCatalog rewrites the catalog in place, staged through a temp file in
// the same directory so an interrupted run cannot truncate the original.
func WriteCatalog(path string, catalog *Catalog) error {
	data, err := json.MarshalIndent(catalog, "", config.CatalogIndent)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("stage catalog: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("stage catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("stage catalog: %w", err)
	}

	if err := os.Chmod(tmp.Name(), config.CatalogFileMode); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("stage catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// Package snapshot persists the raw and derived datasets as JSON files in a
// single data directory, one file per named dataset. Files are replaced
// wholesale on write; there is no versioning and no schema enforcement.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mager/libex/config"
)

// Dataset names. Each maps to <name>.json in the store's directory.
const (
	Artists        = "artists"
	Albums         = "albums"
	Features       = "features"
	ArtistFeatures = "artists_features"
	AlbumFeatures  = "albums_features"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// ProvideStore provides a snapshot store rooted at the configured data dir.
func ProvideStore(cfg config.Config) *Store {
	return New(cfg.DataDir)
}

var Options = ProvideStore

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save marshals v as compact JSON and replaces the named dataset.
func (s *Store) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("error creating data dir '%s': %w", s.dir, err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling dataset '%s': %w", name, err)
	}

	if err := os.WriteFile(s.Path(name), b, 0o644); err != nil {
		return fmt.Errorf("error writing dataset '%s': %w", name, err)
	}

	return nil
}

// Load reads the named dataset into v.
func (s *Store) Load(name string, v any) error {
	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("error reading dataset '%s': %w", name, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error unmarshaling dataset '%s': %w", name, err)
	}

	return nil
}

package vendordir

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mattc321/fish-cli/internal/models"
)

// Record is a locally persisted vendor: the canonical name is the map key,
// ID is the remote vendor ID, Name the display name the server returned.
type Record struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// storeFile is the on-disk layout. Only the vendors mapping is durable
// state; the alias index is derived from the static alias table on every
// load and is never persisted.
type storeFile struct {
	Vendors map[string]Record `yaml:"vendors"`
}

// Store persists vendor records to a local YAML file. It assumes a single
// writer per invocation; concurrent runs against the same file may lose
// updates.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the vendor records. A missing file yields an empty map.
func (s *Store) Load() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Vendor store not found at %s, starting empty", s.path)
			return map[string]Record{}, nil
		}
		return nil, fmt.Errorf("error reading vendor store: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing vendor store %s: %w", s.path, err)
	}
	if f.Vendors == nil {
		f.Vendors = map[string]Record{}
	}

	log.Debugf("Loaded %d vendors from %s", len(f.Vendors), s.path)
	return f.Vendors, nil
}

// Save writes the vendor records atomically: the file is written to a
// temporary path and renamed into place.
func (s *Store) Save(vendors map[string]Record) error {
	data, err := yaml.Marshal(storeFile{Vendors: vendors})
	if err != nil {
		return fmt.Errorf("error marshaling vendor store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing vendor store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing vendor store: %w", err)
	}
	if err := os.Chmod(tmpName, models.PermissionDataFile); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error setting vendor store permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing vendor store: %w", err)
	}

	log.Debugf("Saved %d vendors to %s", len(vendors), s.path)
	return nil
}

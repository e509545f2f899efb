package store

import (
	"os"
	"path/filepath"
	"strings"
)

const sqliteFileName = "monthcal.sqlite"

// Store is a local data directory holding the SQLite key-value file and
// small UI state files.
type Store struct {
	Dir string
}

// DefaultDir returns the data directory used when --dir/MONTHCAL_DIR are unset.
func DefaultDir(configDir string) (string, error) {
	dir, err := ConfigDir(configDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// ResolveDir picks the explicit dir when set, else DefaultDir.
func ResolveDir(explicit, configDir string) (string, error) {
	if d := strings.TrimSpace(explicit); d != "" {
		return d, nil
	}
	return DefaultDir(configDir)
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), sqliteFileName)
}

// Events returns the event collection bound to this store's "events" slot.
func (s Store) Events() *EventStore {
	return NewEventStore(s)
}

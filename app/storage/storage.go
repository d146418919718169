package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound is returned when the named data file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrCorrupted is returned when a data file exists but cannot be
	// parsed as a collection envelope.
	ErrCorrupted = errors.New("data file corrupted")
)

// Store reads and writes named files inside a single data directory.
// Writes go to a sibling temporary file followed by an atomic rename, so
// a concurrent reader observes either the previous or the new content,
// never a truncated file. Store performs no write serialization on its
// own; that is layered above by LockTable.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether the named file is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Read returns the content of the named file, or ErrNotFound.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Write atomically replaces the named file with data. If the write fails
// before the rename the destination is left untouched.
func (s *Store) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file for %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file for %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file for %s: %w", name, err)
	}
	return nil
}

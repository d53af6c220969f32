package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists whole JSON documents, one file per named collection, under
// a single data directory. There is no partial write path: callers read a
// document, mutate it in memory and write it back in full.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read returns the document stored under name. When no file exists yet the
// default is persisted and returned, so the first read of a collection
// materializes it on disk. Any other I/O or decode error propagates to the
// caller unmodified.
func Read[T any](s *Store, name string, def T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		if err := writeLocked(s, name, def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return def, err
	}
	return doc, nil
}

// Write replaces the document stored under name.
func Write[T any](s *Store, name string, doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLocked(s, name, doc)
}

func writeLocked[T any](s *Store, name string, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o644)
}

package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStorage keeps all items in a single YAML document.
// The document is read once when opened and rewritten in full on every change.
type FileStorage struct {
	mu    sync.RWMutex
	path  string
	items map[string]string
}

// NewFileStorage opens the document at path. A missing file yields empty storage;
// the file is created on the first write.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{
		path:  path,
		items: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("storage file does not exist yet", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("reading storage file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("parsing storage file %s: %w", path, err)
	}
	if s.items == nil {
		// empty document
		s.items = make(map[string]string)
	}

	slog.Debug("storage file loaded", "path", path, "num_keys", len(s.items))
	return s, nil
}

// Path returns the backing file path
func (s *FileStorage) Path() string {
	return s.path
}

// GetItem returns the value stored under key
func (s *FileStorage) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key and rewrites the document
func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.writeLocked(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

// RemoveItem deletes key and rewrites the document
func (s *FileStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.writeLocked(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

// writeLocked replaces the file with the current document.
// Writes go to a temp file in the same directory which is then renamed over the target.
func (s *FileStorage) writeLocked() error {
	data, err := yaml.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encoding storage document: %w", err)
	}

	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: 0755 is appropriate for the data directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating storage directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing storage file %s: %w", s.path, err)
	}
	return nil
}

// ensure FileStorage implements Storage
var _ Storage = (*FileStorage)(nil)

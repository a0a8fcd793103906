package kv

import "sync"

// MemoryStorage is a map-backed Storage.
// Useful for testing: it counts writes and can be told to fail them.
type MemoryStorage struct {
	mu       sync.RWMutex
	items    map[string]string
	writes   int
	writeErr error
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem returns the value stored under key
func (s *MemoryStorage) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key
func (s *MemoryStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.items[key] = value
	s.writes++
	return nil
}

// RemoveItem deletes key
func (s *MemoryStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	delete(s.items, key)
	s.writes++
	return nil
}

// Writes returns the number of successful SetItem/RemoveItem calls
func (s *MemoryStorage) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// SetWriteError makes every following write fail with err (nil restores writes)
func (s *MemoryStorage) SetWriteError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// ensure MemoryStorage implements Storage
var _ Storage = (*MemoryStorage)(nil)

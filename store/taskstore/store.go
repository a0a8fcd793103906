package taskstore

// TaskStore is the Store implementation that mirrors the task list into a key-value storage.

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/store"
	"github.com/boolean-maybe/todos/store/kv"
	taskpkg "github.com/boolean-maybe/todos/task"
)

// TaskStore keeps the ordered task list in memory.
// Every mutation writes the whole list as one JSON value under a single storage key.
type TaskStore struct {
	mu             sync.RWMutex
	storage        kv.Storage
	key            string
	tasks          []*taskpkg.Task // insertion order, never sorted
	listeners      map[int]store.ChangeListener
	nextListenerID int
	newID          func() string
}

// Option configures a TaskStore
type Option func(*TaskStore)

// WithIDStyle selects the ID style ("uuid" or "nanoid") for new tasks
func WithIDStyle(style string) Option {
	return func(s *TaskStore) {
		s.newID = func() string { return config.GenerateTaskID(style) }
	}
}

// WithIDGenerator overrides ID generation
func WithIDGenerator(gen func() string) Option {
	return func(s *TaskStore) {
		s.newID = gen
	}
}

// NewTaskStore creates a TaskStore and loads the list stored under key.
// An absent value yields an empty list; an undecodable one fails with ErrCorruptSnapshot.
func NewTaskStore(storage kv.Storage, key string, opts ...Option) (*TaskStore, error) {
	slog.Debug("creating new TaskStore", "key", key)
	s := &TaskStore{
		storage:        storage,
		key:            key,
		listeners:      make(map[int]store.ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
		newID:          func() string { return config.GenerateTaskID(config.IDStyleUUID) },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		slog.Error("failed to load tasks during store initialization", "key", key, "error", err)
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	s.mu.Unlock()

	slog.Info("taskStore initialized", "key", key, "num_tasks", len(s.tasks))
	return s, nil
}

// Key returns the storage key the list is persisted under
func (s *TaskStore) Key() string {
	return s.key
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *TaskStore) AddListener(listener store.ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *TaskStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners.
// Must be called without holding the lock: listeners may call back into the store.
func (s *TaskStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]store.ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// ensure TaskStore implements Store
var _ store.Store = (*TaskStore)(nil)

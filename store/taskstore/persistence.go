package taskstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	taskpkg "github.com/boolean-maybe/todos/task"
)

// ErrCorruptSnapshot indicates the stored value could not be decoded as a task list
var ErrCorruptSnapshot = errors.New("stored task list is corrupt")

// EncodeTasks serializes tasks as a JSON array of {"id","todo","isCompleted"}.
// An empty list encodes as "[]".
func EncodeTasks(tasks []*taskpkg.Task) (string, error) {
	if tasks == nil {
		tasks = []*taskpkg.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encoding tasks: %w", err)
	}
	return string(data), nil
}

// DecodeTasks parses a stored value. JSON null decodes to an empty list.
// Any other failure is reported as ErrCorruptSnapshot.
func DecodeTasks(value string) ([]*taskpkg.Task, error) {
	var tasks []*taskpkg.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("%w: entry %d is null", ErrCorruptSnapshot, i)
		}
	}
	if tasks == nil {
		tasks = []*taskpkg.Task{}
	}
	return tasks, nil
}

// loadLocked reads the stored list. Caller must hold the write lock.
func (s *TaskStore) loadLocked() error {
	value, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		return fmt.Errorf("reading key %q: %w", s.key, err)
	}
	if !ok {
		slog.Debug("no stored tasks, starting empty", "key", s.key)
		s.tasks = []*taskpkg.Task{}
		return nil
	}

	tasks, err := DecodeTasks(value)
	if err != nil {
		return fmt.Errorf("key %q: %w", s.key, err)
	}
	s.tasks = tasks
	return nil
}

// persistLocked writes the whole list under the store key. Caller must hold the lock.
// No retry and no rollback: the in-memory list stays as it is on failure.
func (s *TaskStore) persistLocked() error {
	value, err := EncodeTasks(s.tasks)
	if err != nil {
		return err
	}
	if err := s.storage.SetItem(s.key, value); err != nil {
		return fmt.Errorf("writing key %q: %w", s.key, err)
	}
	return nil
}

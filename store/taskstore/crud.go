package taskstore

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/boolean-maybe/todos/store"
	taskpkg "github.com/boolean-maybe/todos/task"
)

// Add appends a new incomplete task and persists the list.
// The text is stored as given; only the length check uses the trimmed form.
func (s *TaskStore) Add(text string) (*taskpkg.Task, error) {
	t := &taskpkg.Task{Text: text}
	if verr := taskpkg.Validate(t); verr != nil {
		slog.Debug("task rejected", "code", verr.Code, "reason", verr.Message)
		return nil, fmt.Errorf("%w: %s", store.ErrTextTooShort, verr.Message)
	}

	s.mu.Lock()
	t.ID = s.freshIDLocked()
	s.tasks = append(s.tasks, t)
	err := s.persistLocked()
	created := t.Clone()
	s.mu.Unlock()

	if err != nil {
		slog.Error("failed to persist tasks after create", "task_id", created.ID, "error", err)
	} else {
		slog.Info("task created", "task_id", created.ID)
	}
	// notify outside lock to prevent deadlock when listeners call back into store
	s.notifyListeners()
	return created, err
}

// freshIDLocked generates an ID not used by any current task
func (s *TaskStore) freshIDLocked() string {
	for {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
		slog.Debug("ID collision detected, regenerating", "id", id)
	}
}

// indexLocked returns the position of the task with id, or -1
func (s *TaskStore) indexLocked(id string) int {
	return slices.IndexFunc(s.tasks, func(t *taskpkg.Task) bool { return t.ID == id })
}

// GetTask retrieves a task by ID
func (s *TaskStore) GetTask(id string) *taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i].Clone()
	}
	return nil
}

// Delete removes the task with id and persists the list, whether or not it matched.
func (s *TaskStore) Delete(id string) error {
	s.mu.Lock()
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t *taskpkg.Task) bool { return t.ID == id })
	removed := before - len(s.tasks)
	err := s.persistLocked()
	s.mu.Unlock()

	switch {
	case err != nil:
		slog.Error("failed to persist tasks after delete", "task_id", id, "error", err)
	case removed == 0:
		slog.Debug("delete matched no task", "task_id", id)
	default:
		slog.Info("task deleted", "task_id", id)
	}
	s.notifyListeners()
	return err
}

// ToggleCompleted flips the completed flag of the task with id and persists the list,
// whether or not it matched.
func (s *TaskStore) ToggleCompleted(id string) error {
	s.mu.Lock()
	completed, found := false, false
	for _, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			completed, found = t.Completed, true
		}
	}
	err := s.persistLocked()
	s.mu.Unlock()

	switch {
	case err != nil:
		slog.Error("failed to persist tasks after toggle", "task_id", id, "error", err)
	case !found:
		slog.Debug("toggle matched no task", "task_id", id)
	default:
		slog.Info("task toggled", "task_id", id, "completed", completed)
	}
	s.notifyListeners()
	return err
}

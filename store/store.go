package store

import (
	"errors"

	"github.com/boolean-maybe/todos/task"
)

// ErrTextTooShort is returned by Add when the trimmed text is not long enough.
// Nothing is appended or persisted in that case.
var ErrTextTooShort = errors.New("task text too short")

// Store is the interface for the task list.
// Implementations must be thread-safe and notify listeners on changes.
type Store interface {
	// AddListener registers a callback for change notifications.
	// returns a listener ID that can be used to remove the listener.
	AddListener(listener ChangeListener) int

	// RemoveListener removes a previously registered listener by ID
	RemoveListener(id int)

	// Add appends a new incomplete task with a fresh ID and persists the list.
	// Returns ErrTextTooShort without side effects when the text is rejected.
	// On a storage failure the task is kept and returned with the error.
	Add(text string) (*task.Task, error)

	// Delete removes the task with the given ID and persists the list.
	// An unknown ID still persists.
	Delete(id string) error

	// ToggleCompleted flips the completed flag of the task with the given ID
	// and persists the list. An unknown ID still persists.
	ToggleCompleted(id string) error

	// Filter returns tasks whose text contains term, case-insensitively, in list order.
	// An empty term returns every task. Never persists.
	Filter(term string) []*task.Task

	// GetTask retrieves a task by ID
	GetTask(id string) *task.Task

	// GetAllTasks returns all tasks in insertion order
	GetAllTasks() []*task.Task

	// GetStats returns statistics for the header (total, completed)
	GetStats() []Stat
}

// ChangeListener is called when the store's data changes
type ChangeListener func()

// Stat represents a statistic to be displayed in the header
type Stat struct {
	Name  string
	Value string
	Order int
}

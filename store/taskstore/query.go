package taskstore

import (
	"strconv"
	"strings"

	"github.com/boolean-maybe/todos/store"
	taskpkg "github.com/boolean-maybe/todos/task"
)

// GetAllTasks returns copies of all tasks in insertion order
func (s *TaskStore) GetAllTasks() []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*taskpkg.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks
}

// Filter returns copies of the tasks whose text contains term, ignoring case.
// The term is not trimmed: leading or trailing spaces are part of the match.
func (s *TaskStore) Filter(term string) []*taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	termLower := strings.ToLower(term)
	tasks := make([]*taskpkg.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Matches(termLower) {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks
}

// GetStats returns statistics for the header (total, completed)
func (s *TaskStore) GetStats() []store.Stat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	completed := 0
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}

	return []store.Stat{
		{Name: "Total", Value: strconv.Itoa(len(s.tasks)), Order: 1},
		{Name: "Done", Value: strconv.Itoa(completed), Order: 2},
	}
}

package task

import (
	"strings"
)

// Task is one entry of the todo list.
// JSON tags match the stored format: {"id", "todo", "isCompleted"}.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"todo"`
	Completed bool   `json:"isCompleted"`
}

// Clone returns a copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Matches reports whether the task text contains the already lowercased term.
// An empty term matches every task.
func (t *Task) Matches(lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), lowerTerm)
}

// Checkbox returns the glyph shown in front of the task text
func (t *Task) Checkbox() string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

package testutil

import (
	"fmt"
	"testing"

	"github.com/boolean-maybe/todos/store/kv"
	"github.com/boolean-maybe/todos/store/taskstore"
	"github.com/boolean-maybe/todos/task"
)

// StorageKey is the key the test app keeps its task list under
const StorageKey = "todos"

// NewTask builds a task fixture
func NewTask(id, text string, completed bool) *task.Task {
	return &task.Task{ID: id, Text: text, Completed: completed}
}

// SeedTasks writes tasks to storage under StorageKey in the stored wire format
func SeedTasks(t *testing.T, storage kv.Storage, tasks ...*task.Task) {
	t.Helper()
	value, err := taskstore.EncodeTasks(tasks)
	if err != nil {
		t.Fatalf("failed to encode tasks: %v", err)
	}
	if err := storage.SetItem(StorageKey, value); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}
}

// SequentialIDs returns an ID generator producing id-1, id-2, ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

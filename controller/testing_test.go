package controller

import (
	"fmt"
	"testing"

	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store/kv"
	"github.com/boolean-maybe/todos/store/taskstore"

	"github.com/rivo/tview"
)

// Test utilities for controller unit tests

// newMockNavigationController creates a navigation controller without a tview.Application
func newMockNavigationController() *NavigationController {
	return &NavigationController{
		app:      nil, // Unit tests don't need the tview.Application
		navState: newViewStack(),
	}
}

// newTestListController wires a list controller to a memory-backed task store with sequential IDs
func newTestListController(t *testing.T) (*ListController, *taskstore.TaskStore, *kv.MemoryStorage) {
	t.Helper()

	storage := kv.NewMemoryStorage()
	seq := 0
	ts, err := taskstore.NewTaskStore(storage, "todos", taskstore.WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}))
	if err != nil {
		t.Fatalf("NewTaskStore() error = %v", err)
	}
	return NewListController(ts, model.NewDraftState(), model.NewHeaderConfig()), ts, storage
}

// mockView is a View whose text input focus is controlled by the test
type mockView struct {
	viewID       model.ViewID
	inputFocused bool
}

func (m *mockView) GetPrimitive() tview.Primitive { return tview.NewBox() }
func (m *mockView) GetActionRegistry() *ActionRegistry { return NewActionRegistry() }
func (m *mockView) GetViewID() model.ViewID { return m.viewID }
func (m *mockView) OnFocus() {}
func (m *mockView) OnBlur() {}
func (m *mockView) IsInputFocused() bool { return m.inputFocused }

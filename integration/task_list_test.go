package integration

import (
	"testing"

	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/testutil"

	"github.com/gdamore/tcell/v2"
)

func seededApp(t *testing.T) *testutil.TestApp {
	t.Helper()
	return testutil.NewTestApp(t,
		testutil.NewTask("t1", "Buy milk", false),
		testutil.NewTask("t2", "Walk dog", false),
		testutil.NewTask("t3", "buy bread", true),
	)
}

// TestTaskList_RendersStoredTasks verifies rehydrated tasks render in stored order
func TestTaskList_RendersStoredTasks(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	_, _, y1 := ta.FindText("Buy milk")
	_, _, y2 := ta.FindText("Walk dog")
	found, _, y3 := ta.FindText("buy bread")
	if !found {
		ta.DumpScreen()
		t.Fatalf("seeded tasks should be visible")
	}
	if !(y1 < y2 && y2 < y3) {
		t.Errorf("tasks out of order: rows %d, %d, %d", y1, y2, y3)
	}
	if found, _, _ := ta.FindText("[x]"); !found {
		t.Errorf("completed task should show a checked box")
	}
}

// TestTaskList_ToggleWithSpace verifies space flips the selected task only
func TestTaskList_ToggleWithSpace(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	ta.SendRune(' ')

	if !ta.TaskStore.GetTask("t1").Completed {
		t.Fatalf("selected task should be completed")
	}
	if ta.TaskStore.GetTask("t2").Completed {
		t.Errorf("other tasks must not change")
	}
	if got := ta.HeaderConfig.GetStats(); !hasStat(got, "Done", "2") {
		t.Errorf("header stats = %+v, want Done 2", got)
	}

	ta.SendRune('x')
	if ta.TaskStore.GetTask("t1").Completed {
		t.Errorf("second toggle should clear completion")
	}
}

// TestTaskList_DeleteSelected verifies moving down and pressing d removes that task
func TestTaskList_DeleteSelected(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	ta.SendRune('j')
	ta.SendRune('d')

	if ta.TaskStore.GetTask("t2") != nil {
		t.Fatalf("t2 should be deleted")
	}
	if found, _, _ := ta.FindText("Walk dog"); found {
		ta.DumpScreen()
		t.Errorf("deleted task should disappear from the screen")
	}
	if found, _, _ := ta.FindText("Buy milk"); !found {
		t.Errorf("remaining tasks should stay visible")
	}
	if got := ta.DraftState.GetSelection(); got != 1 {
		t.Errorf("selection = %d, want 1", got)
	}
}

// TestTaskList_DeleteLastTaskShowsPlaceholder verifies the placeholder after the list empties
func TestTaskList_DeleteLastTaskShowsPlaceholder(t *testing.T) {
	ta := testutil.NewTestApp(t, testutil.NewTask("t1", "Buy milk", false))
	defer ta.Cleanup()

	ta.SendKey(tcell.KeyDelete, 0, tcell.ModNone)

	if n := len(ta.TaskStore.GetAllTasks()); n != 0 {
		t.Fatalf("expected empty store, got %d tasks", n)
	}
	if found, _, _ := ta.FindText("No tasks to display."); !found {
		ta.DumpScreen()
		t.Errorf("placeholder should be shown")
	}
	if !ta.ListView().IsShowingPlaceholder() {
		t.Errorf("list view should report the placeholder page")
	}
}

// TestTaskList_TabCyclesPanes verifies Tab and Shift-Tab move through search, list and add
func TestTaskList_TabCyclesPanes(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	steps := []struct {
		key  tcell.Key
		want model.FocusPane
	}{
		{tcell.KeyTab, model.FocusAdd},
		{tcell.KeyTab, model.FocusSearch},
		{tcell.KeyTab, model.FocusList},
		{tcell.KeyBacktab, model.FocusSearch},
		{tcell.KeyBacktab, model.FocusAdd},
	}
	for i, step := range steps {
		ta.SendKey(step.key, 0, tcell.ModNone)
		if got := ta.DraftState.GetFocus(); got != step.want {
			t.Fatalf("step %d: focus = %v, want %v", i, got, step.want)
		}
	}
	if !ta.ListView().IsInputFocused() {
		t.Errorf("add input should hold tview focus")
	}
}

func hasStat(stats []model.HeaderStat, name, value string) bool {
	for _, s := range stats {
		if s.Name == name && s.Value == value {
			return true
		}
	}
	return false
}

package integration

import (
	"testing"

	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/testutil"

	"github.com/gdamore/tcell/v2"
)

// TestSearch_FiltersCaseInsensitively verifies each keystroke re-filters the list
func TestSearch_FiltersCaseInsensitively(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	ta.SendRune('/')
	if ta.DraftState.GetFocus() != model.FocusSearch {
		t.Fatalf("/ should focus the search box")
	}
	ta.SendText("BUY")

	if got := ta.ListView().RowCount(); got != 2 {
		t.Fatalf("expected 2 rows for BUY, got %d", got)
	}
	if found, _, _ := ta.FindText("Walk dog"); found {
		ta.DumpScreen()
		t.Errorf("non-matching task should be hidden")
	}
	if got := ta.HeaderConfig.GetStats(); !hasStat(got, "Shown", "2") || !hasStat(got, "Total", "3") {
		t.Errorf("header stats = %+v", got)
	}
	if n := len(ta.TaskStore.GetAllTasks()); n != 3 {
		t.Errorf("search must not change the store, got %d tasks", n)
	}
}

// TestSearch_NoMatchShowsPlaceholder verifies an empty projection shows the placeholder
func TestSearch_NoMatchShowsPlaceholder(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	ta.SendRune('/')
	ta.SendText("zzz")

	if found, _, _ := ta.FindText("No tasks to display."); !found {
		ta.DumpScreen()
		t.Errorf("placeholder should be shown when nothing matches")
	}
}

// TestSearch_EscapeLeavesThenClears verifies Esc returns to the list, then clears the search
func TestSearch_EscapeLeavesThenClears(t *testing.T) {
	ta := seededApp(t)
	defer ta.Cleanup()

	ta.SendRune('/')
	ta.SendText("walk")
	ta.SendKey(tcell.KeyEscape, 0, tcell.ModNone)

	if ta.DraftState.GetFocus() != model.FocusList {
		t.Fatalf("Esc in the search box should focus the list")
	}
	if ta.DraftState.GetSearch() != "walk" {
		t.Fatalf("leaving the search box should keep the search")
	}

	// actions on the filtered list target the visible task
	ta.SendRune(' ')
	if !ta.TaskStore.GetTask("t2").Completed {
		t.Errorf("toggle should apply to the only visible task")
	}

	ta.SendKey(tcell.KeyEscape, 0, tcell.ModNone)
	if ta.DraftState.GetSearch() != "" {
		t.Errorf("Esc on the list should clear the search")
	}
	if got := ta.ListView().RowCount(); got != 3 {
		t.Errorf("all tasks should be visible again, got %d rows", got)
	}
	if ta.NavController.CurrentViewID() != model.ListViewID {
		t.Errorf("clearing the search must not leave the list view")
	}
}

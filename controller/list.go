package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"
	"github.com/boolean-maybe/todos/task"
)

// ListController turns list view intents into store calls.
// The filtered list is always derived from the store and the search string, never kept.
type ListController struct {
	taskStore    store.Store
	draft        *model.DraftState
	headerConfig *model.HeaderConfig
	registry     *ActionRegistry
}

// NewListController creates the task list controller
func NewListController(taskStore store.Store, draft *model.DraftState, headerConfig *model.HeaderConfig) *ListController {
	return &ListController{
		taskStore:    taskStore,
		draft:        draft,
		headerConfig: headerConfig,
		registry:     ListViewActions(),
	}
}

// GetActionRegistry returns the list view actions
func (lc *ListController) GetActionRegistry() *ActionRegistry {
	return lc.registry
}

// GetDraftState returns the transient view state
func (lc *ListController) GetDraftState() *model.DraftState {
	return lc.draft
}

// GetStore returns the task store
func (lc *ListController) GetStore() store.Store {
	return lc.taskStore
}

// VisibleTasks returns the tasks matching the current search string, in list order
func (lc *ListController) VisibleTasks() []*task.Task {
	return lc.taskStore.Filter(lc.draft.GetSearch())
}

// SelectedTask returns the selected visible task, or nil when the list is empty
func (lc *ListController) SelectedTask() *task.Task {
	visible := lc.VisibleTasks()
	if len(visible) == 0 {
		return nil
	}
	return visible[lc.draft.ClampSelection(len(visible))]
}

// CanAdd reports whether the add control is enabled for the current draft
func (lc *ListController) CanAdd() bool {
	return task.CanSubmitDraft(lc.draft.GetDraft())
}

// GetStats returns the view stats for the header
func (lc *ListController) GetStats() []store.Stat {
	return []store.Stat{
		{Name: "Shown", Value: strconv.Itoa(len(lc.VisibleTasks())), Order: 3},
	}
}

// HandleDraftChanged records add-row typing. Never touches the store.
func (lc *ListController) HandleDraftChanged(text string) {
	lc.draft.SetDraft(text)
}

// HandleSearchChanged records search typing. Never touches the store.
func (lc *ListController) HandleSearchChanged(text string) {
	lc.draft.SetSearch(text)
}

// HandleAdd creates a task from the draft. A disabled add control is a no-op.
// Returns true when a task was appended.
func (lc *ListController) HandleAdd() bool {
	text := lc.draft.GetDraft()
	if !task.CanSubmitDraft(text) {
		slog.Debug("add ignored, draft too short", "length", len(text))
		return false
	}

	created, err := lc.taskStore.Add(text)
	if errors.Is(err, store.ErrTextTooShort) {
		return false
	}
	if created == nil {
		lc.report("add", err)
		return false
	}

	lc.draft.ClearDraft()
	lc.selectTask(created.ID)
	lc.report("add", err)
	return true
}

// HandleAction processes a list view action
func (lc *ListController) HandleAction(actionID ActionID) bool {
	switch actionID {
	case ActionNavUp:
		lc.draft.MoveSelection(-1, len(lc.VisibleTasks()))
		return true
	case ActionNavDown:
		lc.draft.MoveSelection(1, len(lc.VisibleTasks()))
		return true
	case ActionNavTop:
		lc.draft.SetSelection(0, len(lc.VisibleTasks()))
		return true
	case ActionNavBottom:
		n := len(lc.VisibleTasks())
		lc.draft.SetSelection(n-1, n)
		return true
	case ActionToggleTask:
		return lc.toggleSelected()
	case ActionDeleteTask:
		return lc.deleteSelected()
	case ActionAddTask:
		return lc.HandleAdd()
	case ActionFocusSearch:
		lc.draft.SetFocus(model.FocusSearch)
		return true
	case ActionFocusAdd:
		lc.draft.SetFocus(model.FocusAdd)
		return true
	case ActionNextPane:
		lc.draft.SetFocus(lc.draft.GetFocus().Next())
		return true
	case ActionPrevPane:
		lc.draft.SetFocus(lc.draft.GetFocus().Prev())
		return true
	case ActionClearSearch:
		return lc.draft.SetSearch("")
	default:
		return false
	}
}

// ToggleTask flips completion of the task with id
func (lc *ListController) ToggleTask(id string) {
	lc.report("toggle", lc.taskStore.ToggleCompleted(id))
}

// DeleteTask removes the task with id and keeps the selection inside the list
func (lc *ListController) DeleteTask(id string) {
	err := lc.taskStore.Delete(id)
	lc.draft.ClampSelection(len(lc.VisibleTasks()))
	lc.report("delete", err)
}

func (lc *ListController) toggleSelected() bool {
	selected := lc.SelectedTask()
	if selected == nil {
		return false
	}
	lc.ToggleTask(selected.ID)
	return true
}

func (lc *ListController) deleteSelected() bool {
	selected := lc.SelectedTask()
	if selected == nil {
		return false
	}
	lc.DeleteTask(selected.ID)
	return true
}

// selectTask moves the selection to the task with id if it is visible
func (lc *ListController) selectTask(id string) {
	visible := lc.VisibleTasks()
	for i, t := range visible {
		if t.ID == id {
			lc.draft.SetSelection(i, len(visible))
			return
		}
	}
}

// report shows storage failures in the header status line and clears stale ones on success
func (lc *ListController) report(op string, err error) {
	if lc.headerConfig == nil {
		return
	}
	if err != nil {
		lc.headerConfig.SetStatus(fmt.Sprintf("%s not saved: %v", op, err), true)
		return
	}
	if _, isErr := lc.headerConfig.GetStatus(); isErr {
		lc.headerConfig.ClearStatus()
	}
}

package controller

import (
	"log/slog"

	"github.com/boolean-maybe/todos/model"

	"github.com/gdamore/tcell/v2"
)

// InputRouter dispatches input events to appropriate controllers
// InputRouter is a dispatcher. It doesn't know what to do with actions; it only knows where to send them

// - Receive a raw key event
// - Determine which controller should handle it (based on current view)
// - Forward the event to that controller
// - Return whether the event was consumed

type InputRouter struct {
	navController  *NavigationController
	listController *ListController
	headerConfig   *model.HeaderConfig
	globalActions  *ActionRegistry
	inputActions   *ActionRegistry
}

// NewInputRouter creates an input router
func NewInputRouter(
	navController *NavigationController,
	listController *ListController,
	headerConfig *model.HeaderConfig,
) *InputRouter {
	return &InputRouter{
		navController:  navController,
		listController: listController,
		headerConfig:   headerConfig,
		globalActions:  DefaultGlobalActions(),
		inputActions:   InputFieldActions(),
	}
}

// HandleInput processes a key event for the current view and routes it to the appropriate handler.
// It processes events through multiple handlers in order:
// 1. Focused text inputs (search box, add row)
// 2. Global actions (Esc, quit, help, header)
// 3. View-specific actions (based on current view)
// Returns true if the event was handled, false otherwise.
func (ir *InputRouter) HandleInput(event *tcell.EventKey, currentView *ViewEntry) bool {
	slog.Debug("input received", "name", event.Name(), "key", int(event.Key()), "rune", string(event.Rune()), "modifiers", int(event.Modifiers()))

	if currentView == nil {
		return false
	}

	activeView := ir.navController.GetActiveView()

	if stop, handled := ir.maybeHandleInputField(activeView, currentView.ViewID, event); stop {
		return handled
	}

	// check global actions first
	if action := ir.globalActions.Match(event); action != nil {
		return ir.handleGlobalAction(action.ID, currentView.ViewID)
	}

	// route to view-specific controller
	switch currentView.ViewID {
	case model.ListViewID:
		return ir.handleListInput(event)
	default:
		return false
	}
}

// maybeHandleInputField intercepts the few keys that leave or submit a focused text input.
// Everything else is typed into the input by tview.
// stop=true means input routing should stop and return handled.
func (ir *InputRouter) maybeHandleInputField(activeView View, viewID model.ViewID, event *tcell.EventKey) (stop bool, handled bool) {
	if viewID != model.ListViewID || ir.listController == nil {
		return false, false
	}
	inputView, ok := activeView.(InputFocusView)
	if !ok || !inputView.IsInputFocused() {
		return false, false
	}

	action := ir.inputActions.Match(event)
	if action == nil {
		return true, false
	}

	draft := ir.listController.GetDraftState()
	switch action.ID {
	case ActionAddTask:
		if draft.GetFocus() == model.FocusAdd {
			ir.listController.HandleAdd()
			return true, true
		}
		// Enter in the search box hands focus to the results
		draft.SetFocus(model.FocusList)
		return true, true
	case ActionNextPane:
		draft.SetFocus(draft.GetFocus().Next())
		return true, true
	case ActionPrevPane:
		draft.SetFocus(draft.GetFocus().Prev())
		return true, true
	case ActionBack:
		draft.SetFocus(model.FocusList)
		return true, true
	default:
		return true, false
	}
}

// handleGlobalAction processes actions available in all views
func (ir *InputRouter) handleGlobalAction(actionID ActionID, viewID model.ViewID) bool {
	switch actionID {
	case ActionBack:
		if viewID == model.ListViewID && ir.listController != nil {
			// Esc on the list clears an active search before anything else
			if ir.listController.GetDraftState().GetSearch() != "" {
				return ir.listController.HandleAction(ActionClearSearch)
			}
		}
		return ir.navController.HandleBack()
	case ActionQuit:
		ir.navController.HandleQuit()
		return true
	case ActionHelp:
		if viewID == model.HelpViewID {
			return true
		}
		ir.navController.PushView(model.HelpViewID, nil)
		return true
	case ActionKeys:
		params := model.HelpParams(model.HelpSectionKeys)
		if viewID == model.HelpViewID {
			// already in help: switch page without stacking another help view
			ir.navController.ReplaceView(model.HelpViewID, params)
			return true
		}
		ir.navController.PushView(model.HelpViewID, params)
		return true
	case ActionToggleHeader:
		if ir.headerConfig == nil {
			return false
		}
		ir.headerConfig.ToggleUserPreference()
		return true
	default:
		return false
	}
}

// handleListInput routes input to the list controller
func (ir *InputRouter) handleListInput(event *tcell.EventKey) bool {
	if ir.listController == nil {
		return false
	}
	registry := ir.listController.GetActionRegistry()
	if action := registry.Match(event); action != nil {
		return ir.listController.HandleAction(action.ID)
	}
	return false
}

package controller

import (
	"github.com/gdamore/tcell/v2"
)

// ActionRegistry maps keyboard shortcuts to actions and matches key events.

// ActionID identifies a specific action
type ActionID string

// ActionID values for global actions (available in all views).
const (
	ActionBack         ActionID = "back"
	ActionQuit         ActionID = "quit"
	ActionHelp         ActionID = "help"
	ActionToggleHeader ActionID = "toggle_header"
	ActionKeys         ActionID = "keys"
)

// ActionID values for the task list.
const (
	ActionNavUp       ActionID = "nav_up"
	ActionNavDown     ActionID = "nav_down"
	ActionNavTop      ActionID = "nav_top"
	ActionNavBottom   ActionID = "nav_bottom"
	ActionToggleTask  ActionID = "toggle_task"
	ActionDeleteTask  ActionID = "delete_task"
	ActionAddTask     ActionID = "add_task"
	ActionFocusSearch ActionID = "focus_search"
	ActionFocusAdd    ActionID = "focus_add"
	ActionNextPane    ActionID = "next_pane"
	ActionPrevPane    ActionID = "prev_pane"
	ActionClearSearch ActionID = "clear_search"
)

// ActionID values for the help view.
const (
	ActionNextLink        ActionID = "next_link"
	ActionPrevLink        ActionID = "prev_link"
	ActionNavigateBack    ActionID = "navigate_back"
	ActionNavigateForward ActionID = "navigate_forward"
)

// Action represents a keyboard shortcut binding
type Action struct {
	ID           ActionID
	Key          tcell.Key
	Rune         rune // for letter keys (when Key == tcell.KeyRune)
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool // whether to display in header bar
}

// ActionRegistry holds the available actions for a view.
// actions keeps registration order for the header; byKey/byRune index the same actions for lookup.
type ActionRegistry struct {
	actions []Action
	byKey   map[tcell.Key]Action
	byRune  map[rune]Action
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]Action, 0),
		byKey:   make(map[tcell.Key]Action),
		byRune:  make(map[rune]Action),
	}
}

// Register adds an action to the registry
func (r *ActionRegistry) Register(action Action) {
	r.actions = append(r.actions, action)
	if action.Key == tcell.KeyRune {
		r.byRune[action.Rune] = action
	} else {
		r.byKey[action.Key] = action
	}
}

// Merge adds all actions from another registry into this one.
// Actions from the other registry are appended to preserve order.
func (r *ActionRegistry) Merge(other *ActionRegistry) {
	for _, action := range other.actions {
		r.Register(action)
	}
}

// GetActions returns all registered actions
func (r *ActionRegistry) GetActions() []Action {
	return r.actions
}

// Lookup returns the action registered for a rune or special key
func (r *ActionRegistry) Lookup(key tcell.Key, ch rune) (Action, bool) {
	if key == tcell.KeyRune {
		a, ok := r.byRune[ch]
		return a, ok
	}
	a, ok := r.byKey[key]
	return a, ok
}

// Match finds the first action matching the given key event
func (r *ActionRegistry) Match(event *tcell.EventKey) *Action {
	// normalize modifier (ignore caps lock, num lock, etc.)
	mod := event.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)

	for i := range r.actions {
		action := &r.actions[i]

		if event.Key() == tcell.KeyRune {
			if action.Key == tcell.KeyRune && action.Rune == event.Rune() {
				// if action has explicit modifiers, require exact match
				if action.Modifier != 0 && action.Modifier != mod {
					continue
				}
				return action
			}
			continue
		}

		// for special keys, require exact modifier match
		if action.Key == event.Key() && action.Modifier == mod {
			return action
		}
	}
	return nil
}

// GetHeaderActions returns only actions marked for header display
func (r *ActionRegistry) GetHeaderActions() []Action {
	var result []Action
	for _, a := range r.actions {
		if a.ShowInHeader {
			result = append(result, a)
		}
	}
	return result
}

// DefaultGlobalActions returns common actions available in all views
func DefaultGlobalActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back", ShowInHeader: true})
	r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit", ShowInHeader: true})
	r.Register(Action{ID: ActionHelp, Key: tcell.KeyF1, Label: "Help", ShowInHeader: true})
	r.Register(Action{ID: ActionHelp, Key: tcell.KeyRune, Rune: '?', Label: "Help"})
	r.Register(Action{ID: ActionKeys, Key: tcell.KeyF2, Label: "Keys", ShowInHeader: true})
	r.Register(Action{ID: ActionToggleHeader, Key: tcell.KeyF10, Label: "Hide Header", ShowInHeader: true})
	return r
}

// ListViewActions returns the canonical action registry for the task list.
// Single source of truth for both input handling and header display.
func ListViewActions() *ActionRegistry {
	r := NewActionRegistry()

	// navigation (not shown in header)
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyUp, Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyDown, Label: "↓"})
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyRune, Rune: 'k', Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyRune, Rune: 'j', Label: "↓"})
	r.Register(Action{ID: ActionNavTop, Key: tcell.KeyHome, Label: "Top"})
	r.Register(Action{ID: ActionNavBottom, Key: tcell.KeyEnd, Label: "Bottom"})
	r.Register(Action{ID: ActionNextPane, Key: tcell.KeyTab, Label: "Next pane"})
	r.Register(Action{ID: ActionPrevPane, Key: tcell.KeyBacktab, Label: "Prev pane"})
	r.Register(Action{ID: ActionDeleteTask, Key: tcell.KeyDelete, Label: "Delete"})
	r.Register(Action{ID: ActionToggleTask, Key: tcell.KeyRune, Rune: 'x', Label: "Toggle"})

	// list actions (shown in header)
	r.Register(Action{ID: ActionToggleTask, Key: tcell.KeyRune, Rune: ' ', Label: "Done", ShowInHeader: true})
	r.Register(Action{ID: ActionDeleteTask, Key: tcell.KeyRune, Rune: 'd', Label: "Delete", ShowInHeader: true})
	r.Register(Action{ID: ActionFocusAdd, Key: tcell.KeyRune, Rune: 'a', Label: "Add", ShowInHeader: true})
	r.Register(Action{ID: ActionFocusSearch, Key: tcell.KeyRune, Rune: '/', Label: "Search", ShowInHeader: true})
	r.Register(Action{ID: ActionClearSearch, Key: tcell.KeyRune, Rune: 'c', Label: "Clear search", ShowInHeader: true})

	return r
}

// InputFieldActions returns the keys the list view intercepts while a text input has focus.
// Everything else is typed into the field.
func InputFieldActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionAddTask, Key: tcell.KeyEnter, Label: "Add", ShowInHeader: true})
	r.Register(Action{ID: ActionNextPane, Key: tcell.KeyTab, Label: "Next", ShowInHeader: true})
	r.Register(Action{ID: ActionPrevPane, Key: tcell.KeyBacktab, Label: "Prev", ShowInHeader: true})
	r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "List", ShowInHeader: true})
	return r
}

// HelpViewActions returns the action registry for the help view.
// Scrolling and link navigation are handled by the markdown component; the
// registry only drives the header hints.
func HelpViewActions(canGoBack, canGoForward bool) *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionNextLink, Key: tcell.KeyTab, Label: "Next Link", ShowInHeader: true})
	r.Register(Action{ID: ActionPrevLink, Key: tcell.KeyBacktab, Label: "Prev Link", ShowInHeader: true})
	if canGoBack {
		r.Register(Action{ID: ActionNavigateBack, Key: tcell.KeyLeft, Label: "← Back", ShowInHeader: true})
	}
	if canGoForward {
		r.Register(Action{ID: ActionNavigateForward, Key: tcell.KeyRight, Label: "Forward →", ShowInHeader: true})
	}
	return r
}

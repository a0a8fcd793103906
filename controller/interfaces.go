package controller

import (
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"

	"github.com/rivo/tview"
)

// View and ViewFactory interfaces decouple controllers from view implementations.

// FocusSettable is implemented by views that move tview focus between their subcomponents.
type FocusSettable interface {
	SetFocusSetter(setter func(p tview.Primitive))
}

// View represents a renderable view with its action registry
type View interface {
	// GetPrimitive returns the tview primitive for this view
	GetPrimitive() tview.Primitive

	// GetActionRegistry returns the actions available in this view
	GetActionRegistry() *ActionRegistry

	// GetViewID returns the identifier for this view type
	GetViewID() model.ViewID

	// OnFocus is called when the view becomes active
	OnFocus()

	// OnBlur is called when the view becomes inactive
	OnBlur()
}

// ViewFactory creates views on demand
type ViewFactory interface {
	// CreateView instantiates a view by ID with optional parameters
	CreateView(viewID model.ViewID, params map[string]interface{}) View
}

// InputFocusView is a view containing text inputs that take raw keystrokes
type InputFocusView interface {
	View

	// IsInputFocused reports whether a text input currently has tview focus
	IsInputFocused() bool
}

// InitialFocuser is a view that focuses a subcomponent rather than its root primitive
type InitialFocuser interface {
	// InitialFocus returns the primitive to focus when the view is activated
	InitialFocus() tview.Primitive
}

// StatsProvider is a view that provides statistics for the header
type StatsProvider interface {
	// GetStats returns stats to display in the header for this view
	GetStats() []store.Stat
}

// StatsChangeNotifier is a view whose stats change without a store change (e.g. search)
type StatsChangeNotifier interface {
	// SetStatsChangeHandler sets the callback for when the view's stats change
	SetStatsChangeHandler(handler func())
}

package controller

import (
	"github.com/boolean-maybe/todos/model"

	"github.com/rivo/tview"
)

// NavigationController handles view transitions: push, pop, and managing the navigation stack.
// It does NOT create views - that's handled by RootLayout which observes the LayoutModel.
type NavigationController struct {
	app              *tview.Application
	navState         *viewStack
	activeViewGetter func() View                                              // returns the currently displayed view from RootLayout
	onViewChanged    func(viewID model.ViewID, params map[string]interface{}) // callback when view changes (for layoutModel sync)
}

// NewNavigationController creates a navigation controller
func NewNavigationController(app *tview.Application) *NavigationController {
	return &NavigationController{
		app:      app,
		navState: newViewStack(),
	}
}

// SetActiveViewGetter sets the function to retrieve the currently displayed view
func (nc *NavigationController) SetActiveViewGetter(getter func() View) {
	nc.activeViewGetter = getter
}

// SetOnViewChanged registers a callback that runs when the view changes (for layoutModel sync)
func (nc *NavigationController) SetOnViewChanged(callback func(viewID model.ViewID, params map[string]interface{})) {
	nc.onViewChanged = callback
}

// PushView navigates to a new view, adding it to the stack
func (nc *NavigationController) PushView(viewID model.ViewID, params map[string]interface{}) {
	nc.navState.push(viewID, params)
	nc.notify(viewID, params)
}

// ReplaceView replaces the current view with a new one (maintains stack depth)
func (nc *NavigationController) ReplaceView(viewID model.ViewID, params map[string]interface{}) bool {
	if !nc.navState.replaceTopView(viewID, params) {
		return false
	}
	nc.notify(viewID, params)
	return true
}

// PopView returns to the previous view. The root view is never popped.
func (nc *NavigationController) PopView() bool {
	if !nc.navState.canGoBack() {
		return false
	}
	nc.navState.pop()

	prev := nc.navState.currentView()
	if prev == nil {
		return false
	}
	nc.notify(prev.ViewID, prev.Params)
	return true
}

func (nc *NavigationController) notify(viewID model.ViewID, params map[string]interface{}) {
	// RootLayout observes the layout model and creates the view
	if nc.onViewChanged != nil {
		nc.onViewChanged(viewID, params)
	}
}

// GetActiveView returns the currently displayed view (from RootLayout)
func (nc *NavigationController) GetActiveView() View {
	if nc.activeViewGetter != nil {
		return nc.activeViewGetter()
	}
	return nil
}

// CurrentView returns the current view entry from the navigation stack
func (nc *NavigationController) CurrentView() *ViewEntry {
	return nc.navState.currentView()
}

// CurrentViewID returns the view ID of the current view
func (nc *NavigationController) CurrentViewID() model.ViewID {
	return nc.navState.currentViewID()
}

// Depth returns the current stack depth (for testing)
func (nc *NavigationController) Depth() int {
	return nc.navState.depth()
}

// GetApp returns the tview application
func (nc *NavigationController) GetApp() *tview.Application {
	return nc.app
}

// HandleBack processes the back/escape action
func (nc *NavigationController) HandleBack() bool {
	return nc.PopView()
}

// HandleQuit stops the application
func (nc *NavigationController) HandleQuit() {
	if nc.app != nil {
		nc.app.Stop()
	}
}

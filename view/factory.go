package view

import (
	"log/slog"

	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
)

// ViewFactory instantiates views by ID, injecting required dependencies.
// It holds references to shared state (controllers) needed by views.

// ViewFactory creates views on demand
type ViewFactory struct {
	listController *controller.ListController
}

// NewViewFactory creates a view factory
func NewViewFactory(listController *controller.ListController) *ViewFactory {
	return &ViewFactory{listController: listController}
}

// CreateView instantiates a view by ID with optional parameters
func (f *ViewFactory) CreateView(viewID model.ViewID, params map[string]interface{}) controller.View {
	switch viewID {
	case model.ListViewID:
		return NewListView(f.listController)
	case model.HelpViewID:
		return NewHelpView(model.GetHelpSection(params))
	default:
		slog.Error("unknown view ID", "viewID", viewID, "params", params)
		return nil
	}
}

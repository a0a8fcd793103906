package bootstrap

import (
	"github.com/rivo/tview"

	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"
)

// Controllers holds all application controllers.
type Controllers struct {
	Nav  *controller.NavigationController
	List *controller.ListController
}

// BuildControllers constructs the navigation and list controllers for the application.
func BuildControllers(
	app *tview.Application,
	taskStore store.Store,
	draft *model.DraftState,
	headerConfig *model.HeaderConfig,
) *Controllers {
	return &Controllers{
		Nav:  controller.NewNavigationController(app),
		List: controller.NewListController(taskStore, draft, headerConfig),
	}
}

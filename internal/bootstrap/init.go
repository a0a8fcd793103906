package bootstrap

import (
	"log/slog"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/internal/app"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store/kv"
	"github.com/boolean-maybe/todos/store/taskstore"
	"github.com/boolean-maybe/todos/util/sysinfo"
	"github.com/boolean-maybe/todos/view"
	"github.com/boolean-maybe/todos/view/header"
)

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg          *config.Config
	LogLevel     slog.Level
	SystemInfo   *sysinfo.SystemInfo
	Storage      *kv.FileStorage
	TaskStore    *taskstore.TaskStore
	HeaderConfig *model.HeaderConfig
	LayoutModel  *model.LayoutModel
	DraftState   *model.DraftState
	App          *tview.Application
	Controllers  *Controllers
	InputRouter  *controller.InputRouter
	ViewFactory  *view.ViewFactory
	HeaderWidget *header.HeaderWidget
	RootLayout   *view.RootLayout
	// Cleanup releases the signal handler and the log file
	Cleanup func()
}

// Bootstrap orchestrates the complete application initialization sequence.
// Configuration must already be loaded (see LoadConfig).
func Bootstrap(cfg *config.Config, flags *config.Flags) (*BootstrapResult, error) {
	// Phase 1: Logging
	logLevel, closeLog := InitLogging(cfg)
	systemInfo := sysinfo.NewSystemInfo()
	slog.Info("starting todos", append([]any{"version", config.Version}, systemInfo.LogAttrs()...)...)

	// Phase 2: Store initialization
	storage, taskStore, err := InitStores(flags.ResetCorrupt)
	if err != nil {
		closeLog()
		return nil, err
	}
	slog.Info("task store loaded", "file", storage.Path(), "key", taskStore.Key(), "tasks", len(taskStore.GetAllTasks()))

	// Phase 3: Model initialization
	headerConfig, layoutModel := InitHeaderAndLayoutModels()
	InitHeaderBaseStats(headerConfig, taskStore)
	draftState := model.NewDraftState()

	// Phase 4: Application and controllers
	application := app.NewApp()
	stopSignals := app.SetupSignalHandler(application)

	controllers := BuildControllers(application, taskStore, draftState, headerConfig)

	// Phase 5: Input routing
	inputRouter := controller.NewInputRouter(controllers.Nav, controllers.List, headerConfig)

	// Phase 6: View factory and layout
	viewFactory := view.NewViewFactory(controllers.List)
	headerWidget := header.NewHeaderWidget(headerConfig)
	rootLayout := view.NewRootLayout(headerWidget, headerConfig, layoutModel, viewFactory, taskStore, application)

	// Phase 7: View wiring
	wireOnViewActivated(rootLayout, application)

	// Phase 8: Navigation and input wiring
	wireNavigation(controllers.Nav, layoutModel, rootLayout)
	app.InstallGlobalInputCapture(application, inputRouter, controllers.Nav)

	// Phase 9: Initial view
	controllers.Nav.PushView(model.ListViewID, nil)

	return &BootstrapResult{
		Cfg:          cfg,
		LogLevel:     logLevel,
		SystemInfo:   systemInfo,
		Storage:      storage,
		TaskStore:    taskStore,
		HeaderConfig: headerConfig,
		LayoutModel:  layoutModel,
		DraftState:   draftState,
		App:          application,
		Controllers:  controllers,
		InputRouter:  inputRouter,
		ViewFactory:  viewFactory,
		HeaderWidget: headerWidget,
		RootLayout:   rootLayout,
		Cleanup: func() {
			stopSignals()
			closeLog()
		},
	}, nil
}

// wireOnViewActivated wires focus setters into views as they become active.
func wireOnViewActivated(rootLayout *view.RootLayout, app *tview.Application) {
	rootLayout.SetOnViewActivated(func(v controller.View) {
		if focusSettable, ok := v.(controller.FocusSettable); ok {
			focusSettable.SetFocusSetter(func(p tview.Primitive) {
				app.SetFocus(p)
			})
		}
	})
}

// wireNavigation wires navigation controller callbacks to keep LayoutModel
// and RootLayout in sync.
func wireNavigation(navController *controller.NavigationController, layoutModel *model.LayoutModel, rootLayout *view.RootLayout) {
	navController.SetOnViewChanged(func(viewID model.ViewID, params map[string]interface{}) {
		layoutModel.SetContent(viewID, params)
	})
	navController.SetActiveViewGetter(rootLayout.GetContentView)
}

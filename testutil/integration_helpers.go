package testutil

import (
	"strings"
	"testing"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/internal/app"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store/kv"
	"github.com/boolean-maybe/todos/store/taskstore"
	"github.com/boolean-maybe/todos/task"
	"github.com/boolean-maybe/todos/view"
	"github.com/boolean-maybe/todos/view/header"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TestApp wraps the full MVC stack for integration testing with SimulationScreen
type TestApp struct {
	App            *tview.Application
	Screen         tcell.SimulationScreen
	RootLayout     *view.RootLayout
	HeaderWidget   *header.HeaderWidget
	Storage        *kv.MemoryStorage
	TaskStore      *taskstore.TaskStore
	NavController  *controller.NavigationController
	ListController *controller.ListController
	InputRouter    *controller.InputRouter
	HeaderConfig   *model.HeaderConfig
	LayoutModel    *model.LayoutModel
	DraftState     *model.DraftState
	t              *testing.T
}

// NewTestApp bootstraps the full MVC stack over a memory storage seeded with tasks.
// Mirrors the initialization order of bootstrap.Bootstrap and opens on the task list.
func NewTestApp(t *testing.T, seed ...*task.Task) *TestApp {
	t.Helper()

	// 0. Isolate config paths so tests never read the real user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	config.ResetPathManager()
	t.Cleanup(config.ResetPathManager)

	// 1. Storage and store
	storage := kv.NewMemoryStorage()
	if len(seed) > 0 {
		SeedTasks(t, storage, seed...)
	}
	taskStore, err := taskstore.NewTaskStore(storage, StorageKey, taskstore.WithIDGenerator(SequentialIDs()))
	if err != nil {
		t.Fatalf("failed to create task store: %v", err)
	}

	// 2. Models
	headerConfig := model.NewHeaderConfig()
	layoutModel := model.NewLayoutModel()
	draftState := model.NewDraftState()
	headerConfig.SetBaseStat("Version", config.Version, 0)
	for _, stat := range taskStore.GetStats() {
		headerConfig.SetBaseStat(stat.Name, stat.Value, stat.Order)
	}

	// 3. SimulationScreen
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 30)
	screen.Clear()

	// 4. Application on the simulation screen
	application := tview.NewApplication()
	application.SetScreen(screen)

	// 5. Controllers and input routing
	navController := controller.NewNavigationController(application)
	listController := controller.NewListController(taskStore, draftState, headerConfig)
	inputRouter := controller.NewInputRouter(navController, listController, headerConfig)

	// 6. Views
	viewFactory := view.NewViewFactory(listController)
	headerWidget := header.NewHeaderWidget(headerConfig)
	rootLayout := view.NewRootLayout(headerWidget, headerConfig, layoutModel, viewFactory, taskStore, application)

	rootLayout.SetOnViewActivated(func(v controller.View) {
		if focusSettable, ok := v.(controller.FocusSettable); ok {
			focusSettable.SetFocusSetter(func(p tview.Primitive) {
				application.SetFocus(p)
			})
		}
	})
	navController.SetOnViewChanged(func(viewID model.ViewID, params map[string]interface{}) {
		layoutModel.SetContent(viewID, params)
	})
	navController.SetActiveViewGetter(rootLayout.GetContentView)
	app.InstallGlobalInputCapture(application, inputRouter, navController)

	application.SetRoot(rootLayout.GetPrimitive(), true).EnableMouse(false)

	// Note: Do NOT call app.Run() - we use Draw() + screen.Show() for synchronous testing
	navController.PushView(model.ListViewID, nil)

	ta := &TestApp{
		App:            application,
		Screen:         screen,
		RootLayout:     rootLayout,
		HeaderWidget:   headerWidget,
		Storage:        storage,
		TaskStore:      taskStore,
		NavController:  navController,
		ListController: listController,
		InputRouter:    inputRouter,
		HeaderConfig:   headerConfig,
		LayoutModel:    layoutModel,
		DraftState:     draftState,
		t:              t,
	}
	ta.Draw()
	return ta
}

// Draw forces a synchronous draw without running the app event loop
func (ta *TestApp) Draw() {
	_, width, height := ta.Screen.GetContents()
	ta.RootLayout.GetPrimitive().SetRect(0, 0, width, height)
	ta.RootLayout.GetPrimitive().Draw(ta.Screen)
	ta.Screen.Show()
}

// SendKey simulates a key press through the app's input capture.
// Events the capture does not consume are forwarded to the focused primitive.
func (ta *TestApp) SendKey(key tcell.Key, ch rune, mod tcell.ModMask) {
	event := tcell.NewEventKey(key, ch, mod)
	consumed := false
	if capture := ta.App.GetInputCapture(); capture != nil {
		consumed = capture(event) == nil
	}

	if !consumed {
		if focused := ta.App.GetFocus(); focused != nil {
			if handler := focused.InputHandler(); handler != nil {
				handler(event, func(p tview.Primitive) { ta.App.SetFocus(p) })
			}
		}
	}

	ta.Draw()
}

// SendRune presses a single character key
func (ta *TestApp) SendRune(ch rune) {
	ta.SendKey(tcell.KeyRune, ch, tcell.ModNone)
}

// SendText types a string of characters
func (ta *TestApp) SendText(text string) {
	for _, ch := range text {
		ta.SendRune(ch)
	}
}

// AddTask focuses the add input, types text and presses Enter
func (ta *TestApp) AddTask(text string) {
	ta.SendRune('a')
	ta.SendText(text)
	ta.SendKey(tcell.KeyEnter, 0, tcell.ModNone)
}

// ListView returns the active list view, or nil when another view is shown
func (ta *TestApp) ListView() *view.ListView {
	lv, _ := ta.RootLayout.GetContentView().(*view.ListView)
	return lv
}

// GetTextAt extracts text from a screen region starting at (x, y) with given width
func (ta *TestApp) GetTextAt(x, y, width int) string {
	contents, screenWidth, _ := ta.Screen.GetContents()
	var result strings.Builder

	for i := 0; i < width; i++ {
		cellIdx := y*screenWidth + (x + i)
		if cellIdx >= len(contents) {
			break
		}
		cell := contents[cellIdx]
		if len(cell.Runes) > 0 {
			result.WriteRune(cell.Runes[0])
		} else {
			result.WriteRune(' ')
		}
	}

	return strings.TrimSpace(result.String())
}

// FindText searches for a text string anywhere on the screen.
// Returns (found, x, y) where x, y are the coordinates of the first match.
func (ta *TestApp) FindText(needle string) (bool, int, int) {
	_, width, height := ta.Screen.GetContents()
	for y := 0; y < height; y++ {
		rowText := ta.GetTextAt(0, y, width)
		if x := strings.Index(rowText, needle); x >= 0 {
			return true, x, y
		}
	}
	return false, 0, 0
}

// DumpScreen prints the current screen content for debugging
func (ta *TestApp) DumpScreen() {
	_, width, height := ta.Screen.GetContents()
	ta.t.Logf("Screen size: %dx%d", width, height)
	for y := 0; y < height; y++ {
		line := ta.GetTextAt(0, y, width)
		if line != "" {
			ta.t.Logf("Row %2d: %s", y, line)
		}
	}
}

// Cleanup tears down the test app and releases resources
func (ta *TestApp) Cleanup() {
	ta.RootLayout.Cleanup()
	ta.HeaderWidget.Cleanup()
	ta.Screen.Fini()
}

package view

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"
	"github.com/boolean-maybe/todos/view/header"

	"github.com/rivo/tview"
)

// RootLayout is a container view managing a persistent header and swappable content area.
// It observes LayoutModel for content changes and HeaderConfig for visibility changes.
type RootLayout struct {
	root        *tview.Flex
	header      *header.HeaderWidget
	contentArea *tview.Flex

	headerConfig *model.HeaderConfig
	layoutModel  *model.LayoutModel
	viewFactory  controller.ViewFactory
	taskStore    store.Store

	contentView   controller.View
	lastParamsKey string

	headerListenerID  int
	layoutListenerID  int
	storeListenerID   int
	lastHeaderVisible bool
	app               *tview.Application
	onViewActivated   func(controller.View)
}

// NewRootLayout creates a root layout that observes models and manages header/content
func NewRootLayout(
	hdr *header.HeaderWidget,
	headerConfig *model.HeaderConfig,
	layoutModel *model.LayoutModel,
	viewFactory controller.ViewFactory,
	taskStore store.Store,
	app *tview.Application,
) *RootLayout {
	rl := &RootLayout{
		root:              tview.NewFlex().SetDirection(tview.FlexRow),
		header:            hdr,
		contentArea:       tview.NewFlex().SetDirection(tview.FlexRow),
		headerConfig:      headerConfig,
		layoutModel:       layoutModel,
		viewFactory:       viewFactory,
		taskStore:         taskStore,
		lastHeaderVisible: headerConfig.IsVisible(),
		app:               app,
	}

	// Subscribe to layout model changes (content swapping)
	rl.layoutListenerID = layoutModel.AddListener(rl.onLayoutChange)

	// Subscribe to header config changes (visibility)
	rl.headerListenerID = headerConfig.AddListener(rl.onHeaderConfigChange)

	// Subscribe to task store changes (stats updates)
	if taskStore != nil {
		rl.storeListenerID = taskStore.AddListener(rl.onStoreChange)
		rl.updateStoreStats()
	}

	// Build initial layout
	rl.rebuildLayout()

	return rl
}

// SetOnViewActivated registers a callback that runs when any view becomes active.
// This is used to wire up focus setters and other view-specific setup.
func (rl *RootLayout) SetOnViewActivated(callback func(controller.View)) {
	rl.onViewActivated = callback
}

// onLayoutChange is called when LayoutModel changes (content view change or Touch)
func (rl *RootLayout) onLayoutChange() {
	viewID := rl.layoutModel.GetContentViewID()
	params := rl.layoutModel.GetContentParams()

	// Same view with the same params (Touch, or F2 on the keys page): keep the instance
	paramsKey, paramsKeyOK := stableParamsKey(params)
	if paramsKeyOK && rl.contentView != nil && rl.contentView.GetViewID() == viewID && paramsKey == rl.lastParamsKey {
		rl.applyHeaderPreference()
		return
	}

	// Blur current view if exists
	if rl.contentView != nil {
		rl.contentView.OnBlur()
	}

	// RootLayout creates the view (View layer responsibility)
	newView := rl.viewFactory.CreateView(viewID, params)
	if newView == nil {
		slog.Error("failed to create view", "viewID", viewID)
		return
	}
	if paramsKeyOK {
		rl.lastParamsKey = paramsKey
	} else {
		// If we couldn't fingerprint params (invalid/non-scalar), disable the optimization
		rl.lastParamsKey = ""
	}

	rl.applyHeaderPreference()

	// Swap content
	rl.contentArea.Clear()
	rl.contentArea.AddItem(newView.GetPrimitive(), 0, 1, true)
	rl.contentView = newView

	// Update header with new view's actions
	rl.headerConfig.SetViewActions(convertActionRegistry(newView.GetActionRegistry()))

	// Apply view-specific stats from the view
	rl.updateViewStats(newView)

	// Run view activated callback (for focus setters, etc.)
	if rl.onViewActivated != nil {
		rl.onViewActivated(newView)
	}

	// Views whose stats or hints change without a store change report it here
	if notifier, ok := newView.(controller.StatsChangeNotifier); ok {
		notifier.SetStatsChangeHandler(func() {
			rl.updateViewStats(newView)
		})
	}
	if notifier, ok := newView.(interface{ SetActionsChangeHandler(func()) }); ok {
		notifier.SetActionsChangeHandler(func() {
			rl.headerConfig.SetViewActions(convertActionRegistry(newView.GetActionRegistry()))
		})
	}

	// Focus the view
	newView.OnFocus()
	if rl.app == nil {
		return
	}
	if focuser, ok := newView.(controller.InitialFocuser); ok {
		rl.app.SetFocus(focuser.InitialFocus())
		return
	}
	rl.app.SetFocus(newView.GetPrimitive())
}

// applyHeaderPreference shows or hides the header according to the user preference
func (rl *RootLayout) applyHeaderPreference() {
	rl.headerConfig.SetVisible(rl.headerConfig.GetUserPreference())
}

// onHeaderConfigChange is called when HeaderConfig changes
func (rl *RootLayout) onHeaderConfigChange() {
	currentVisible := rl.headerConfig.IsVisible()
	if currentVisible != rl.lastHeaderVisible {
		rl.lastHeaderVisible = currentVisible
		rl.rebuildLayout()
	}
}

// rebuildLayout rebuilds the root flex layout based on current header visibility
func (rl *RootLayout) rebuildLayout() {
	rl.root.Clear()

	if rl.headerConfig.IsVisible() {
		rl.root.AddItem(rl.header, header.HeaderHeight, 0, false)
		rl.root.AddItem(tview.NewBox(), 1, 0, false) // spacer
	}

	rl.root.AddItem(rl.contentArea, 0, 1, true)
}

// GetPrimitive returns the root tview primitive for app.SetRoot()
func (rl *RootLayout) GetPrimitive() tview.Primitive {
	return rl.root
}

// GetActionRegistry delegates to the content view
func (rl *RootLayout) GetActionRegistry() *controller.ActionRegistry {
	if rl.contentView != nil {
		return rl.contentView.GetActionRegistry()
	}
	return controller.NewActionRegistry()
}

// GetViewID delegates to the content view
func (rl *RootLayout) GetViewID() model.ViewID {
	if rl.contentView != nil {
		return rl.contentView.GetViewID()
	}
	return ""
}

// GetContentView returns the current content view
func (rl *RootLayout) GetContentView() controller.View {
	return rl.contentView
}

// OnFocus delegates to the content view
func (rl *RootLayout) OnFocus() {
	if rl.contentView != nil {
		rl.contentView.OnFocus()
	}
}

// OnBlur delegates to the content view
func (rl *RootLayout) OnBlur() {
	if rl.contentView != nil {
		rl.contentView.OnBlur()
	}
}

// Cleanup removes all listeners
func (rl *RootLayout) Cleanup() {
	rl.layoutModel.RemoveListener(rl.layoutListenerID)
	rl.headerConfig.RemoveListener(rl.headerListenerID)
	if rl.taskStore != nil {
		rl.taskStore.RemoveListener(rl.storeListenerID)
	}
}

// onStoreChange is called when the task store changes (task added, toggled or deleted)
func (rl *RootLayout) onStoreChange() {
	rl.updateStoreStats()
	if rl.contentView != nil {
		rl.updateViewStats(rl.contentView)
	}
}

// updateStoreStats copies the store-wide stats into the header
func (rl *RootLayout) updateStoreStats() {
	for _, stat := range rl.taskStore.GetStats() {
		rl.headerConfig.SetBaseStat(stat.Name, stat.Value, stat.Order)
	}
}

// updateViewStats reads stats from the view and updates the header
func (rl *RootLayout) updateViewStats(v controller.View) {
	rl.headerConfig.ClearViewStats()
	if sp, ok := v.(controller.StatsProvider); ok {
		for _, stat := range sp.GetStats() {
			rl.headerConfig.SetViewStat(stat.Name, stat.Value, stat.Order)
		}
	}
}

// convertActionRegistry converts controller.ActionRegistry to []model.HeaderAction
// This avoids import cycles between model and controller packages.
func convertActionRegistry(registry *controller.ActionRegistry) []model.HeaderAction {
	if registry == nil {
		return nil
	}

	actions := registry.GetHeaderActions()
	result := make([]model.HeaderAction, len(actions))
	for i, a := range actions {
		result[i] = model.HeaderAction{
			ID:           string(a.ID),
			Key:          a.Key,
			Rune:         a.Rune,
			Label:        a.Label,
			Modifier:     a.Modifier,
			ShowInHeader: a.ShowInHeader,
		}
	}
	return result
}

// stableParamsKey fingerprints navigation params so re-navigating to the same
// view and params can keep the current instance. ok is false for params that
// cannot be encoded.
func stableParamsKey(params map[string]any) (key string, ok bool) {
	if len(params) == 0 {
		return "", true
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tuples := make([][2]any, 0, len(keys))
	for _, k := range keys {
		tuples = append(tuples, [2]any{k, stableJSONValue(params[k])})
	}

	b, err := json.Marshal(tuples)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// stableJSONValue keeps scalars and tags anything else with its type
func stableJSONValue(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int, int64, float64:
		return x
	default:
		return map[string]string{"type": fmt.Sprintf("%T", v), "value": fmt.Sprintf("%v", v)}
	}
}

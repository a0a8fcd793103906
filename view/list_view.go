package view

import (
	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"
	"github.com/boolean-maybe/todos/task"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	listCaption       = "ALL TODOS"
	emptyPlaceholder  = "No tasks to display."
	searchPlaceholder = "Search tasks..."
	addPlaceholder    = "Add a new task"
	deleteGlyph       = "✕"

	pageTasks = "tasks"
	pageEmpty = "empty"
)

// ListView renders the filtered task list between a search box and an add row.
// It observes the task store and the draft state; all mutations go through the controller.
type ListView struct {
	root        *tview.Flex
	titleBar    *GradientCaptionRow
	searchInput *tview.InputField
	content     *tview.Pages
	table       *tview.Table
	placeholder *tview.TextView
	addInput    *tview.InputField
	addButton   *AddButton

	controller *controller.ListController
	draft      *model.DraftState
	taskStore  store.Store

	storeListenerID int
	draftListenerID int
	focusSetter     func(p tview.Primitive)
	onStatsChanged  func()
	visibleCount    int
	syncing         bool
}

// NewListView creates the task list view
func NewListView(lc *controller.ListController) *ListView {
	lv := &ListView{
		controller: lc,
		draft:      lc.GetDraftState(),
		taskStore:  lc.GetStore(),
	}
	lv.build()
	return lv
}

func (lv *ListView) build() {
	colors := config.GetColors()

	lv.titleBar = NewGradientCaptionRow(listCaption, colors.CaptionGradient, colors.CaptionText)

	lv.searchInput = tview.NewInputField().
		SetLabel(" / ").
		SetPlaceholder(searchPlaceholder).
		SetText(lv.draft.GetSearch())
	lv.searchInput.SetLabelColor(colors.SearchBoxLabelColor)
	lv.searchInput.SetFieldBackgroundColor(colors.SearchBoxBackgroundColor)
	lv.searchInput.SetFieldTextColor(colors.SearchBoxTextColor)
	lv.searchInput.SetPlaceholderTextColor(colors.SearchBoxPlaceholder)
	lv.searchInput.SetChangedFunc(lv.controller.HandleSearchChanged)
	lv.searchInput.SetFocusFunc(func() { lv.draft.SetFocus(model.FocusSearch) })

	lv.table = tview.NewTable().
		SetSelectable(true, false).
		SetSelectedStyle(tcell.StyleDefault.Foreground(colors.RowSelectedText).Background(colors.RowSelectedBg))
	lv.table.SetSelectionChangedFunc(lv.onTableSelection)
	lv.table.SetFocusFunc(func() { lv.draft.SetFocus(model.FocusList) })

	lv.placeholder = tview.NewTextView().
		SetText(emptyPlaceholder).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(colors.PlaceholderText)
	lv.placeholder.SetFocusFunc(func() { lv.draft.SetFocus(model.FocusList) })

	lv.content = tview.NewPages().
		AddPage(pageTasks, lv.table, true, true).
		AddPage(pageEmpty, lv.placeholder, true, false)

	lv.addInput = tview.NewInputField().
		SetLabel(" + ").
		SetPlaceholder(addPlaceholder).
		SetText(lv.draft.GetDraft())
	lv.addInput.SetLabelColor(colors.InputFieldTextColor)
	lv.addInput.SetFieldBackgroundColor(colors.InputFieldBackgroundColor)
	lv.addInput.SetFieldTextColor(colors.InputFieldTextColor)
	lv.addInput.SetPlaceholderTextColor(colors.InputFieldPlaceholder)
	lv.addInput.SetChangedFunc(lv.controller.HandleDraftChanged)
	lv.addInput.SetFocusFunc(func() { lv.draft.SetFocus(model.FocusAdd) })

	lv.addButton = NewAddButton().SetActivateFunc(func() { lv.controller.HandleAdd() })

	addRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(lv.addInput, 0, 1, false).
		AddItem(lv.addButton, config.AddButtonWidth, 0, false)

	lv.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(lv.titleBar, config.CaptionHeight, 0, false).
		AddItem(lv.searchInput, config.SearchRowHeight, 0, false).
		AddItem(lv.content, 0, 1, true).
		AddItem(addRow, config.AddRowHeight, 0, false)

	lv.storeListenerID = lv.taskStore.AddListener(lv.refresh)
	lv.draftListenerID = lv.draft.AddListener(lv.onDraftChanged)

	lv.refresh()
}

// refresh re-derives the visible rows from the store and the search string
func (lv *ListView) refresh() {
	visible := lv.controller.VisibleTasks()
	selected := lv.draft.ClampSelection(len(visible))

	lv.syncing = true
	defer func() { lv.syncing = false }()

	lv.table.Clear()
	for row, t := range visible {
		lv.setRow(row, t)
	}

	if len(visible) == 0 {
		lv.content.SwitchToPage(pageEmpty)
	} else {
		lv.content.SwitchToPage(pageTasks)
		lv.table.Select(selected, 0)
	}

	if len(visible) != lv.visibleCount {
		lv.visibleCount = len(visible)
		if lv.onStatsChanged != nil {
			lv.onStatsChanged()
		}
	}
}

func (lv *ListView) setRow(row int, t *task.Task) {
	colors := config.GetColors()
	style := rowStyleFor(t, colors)

	checkbox := tview.NewTableCell(" " + tview.Escape(t.Checkbox())).
		SetStyle(tcell.StyleDefault.Foreground(colors.RowCheckboxColor)).
		SetMaxWidth(config.CheckboxColWidth)
	text := tview.NewTableCell(tview.Escape(t.Text)).
		SetStyle(style).
		SetExpansion(1).
		SetReference(t.ID)
	del := tview.NewTableCell(deleteGlyph + " ").
		SetStyle(tcell.StyleDefault.Foreground(colors.RowDeleteGlyphColor)).
		SetAlign(tview.AlignRight)

	lv.table.SetCell(row, 0, checkbox)
	lv.table.SetCell(row, 1, text)
	lv.table.SetCell(row, 2, del)
}

// rowStyleFor strikes through and dims completed tasks
func rowStyleFor(t *task.Task, colors *config.ColorConfig) tcell.Style {
	if t.Completed {
		return tcell.StyleDefault.
			Foreground(colors.RowCompletedText).
			Attributes(tcell.AttrStrikeThrough | tcell.AttrDim)
	}
	return tcell.StyleDefault.Foreground(colors.RowText)
}

// onDraftChanged keeps widgets in step with draft state changed by actions
func (lv *ListView) onDraftChanged() {
	if lv.searchInput.GetText() != lv.draft.GetSearch() {
		lv.searchInput.SetText(lv.draft.GetSearch())
	}
	if lv.addInput.GetText() != lv.draft.GetDraft() {
		lv.addInput.SetText(lv.draft.GetDraft())
	}
	lv.addButton.SetEnabled(lv.controller.CanAdd())
	lv.refresh()
	lv.applyFocus()
}

// onTableSelection mirrors mouse selection into the draft state
func (lv *ListView) onTableSelection(row, _ int) {
	if lv.syncing {
		return
	}
	lv.draft.SetSelection(row, lv.table.GetRowCount())
}

// applyFocus moves tview focus to the pane recorded in the draft state
func (lv *ListView) applyFocus() {
	if lv.focusSetter == nil {
		return
	}
	target := lv.paneFor(lv.draft.GetFocus())
	if target.HasFocus() {
		return
	}
	lv.focusSetter(target)
}

func (lv *ListView) paneFor(pane model.FocusPane) tview.Primitive {
	switch pane {
	case model.FocusSearch:
		return lv.searchInput
	case model.FocusAdd:
		return lv.addInput
	default:
		return lv.content
	}
}

// SetFocusSetter sets the callback used to move tview focus between panes
func (lv *ListView) SetFocusSetter(setter func(p tview.Primitive)) {
	lv.focusSetter = setter
}

// SetStatsChangeHandler sets the callback for when the number of shown tasks changes
func (lv *ListView) SetStatsChangeHandler(handler func()) {
	lv.onStatsChanged = handler
}

// InitialFocus returns the pane recorded in the draft state
func (lv *ListView) InitialFocus() tview.Primitive {
	return lv.paneFor(lv.draft.GetFocus())
}

// IsInputFocused reports whether the search box or the add input has focus
func (lv *ListView) IsInputFocused() bool {
	return lv.searchInput.HasFocus() || lv.addInput.HasFocus()
}

// GetStats returns the view stats for the header
func (lv *ListView) GetStats() []store.Stat {
	return lv.controller.GetStats()
}

// IsShowingPlaceholder reports whether the empty-list placeholder is displayed
func (lv *ListView) IsShowingPlaceholder() bool {
	name, _ := lv.content.GetFrontPage()
	return name == pageEmpty
}

// IsAddEnabled reports whether the add button is enabled
func (lv *ListView) IsAddEnabled() bool {
	return lv.addButton.IsEnabled()
}

// AddButton returns the add button (for tests)
func (lv *ListView) AddButton() *AddButton {
	return lv.addButton
}

// RowCount returns the number of rendered task rows
func (lv *ListView) RowCount() int {
	return lv.table.GetRowCount()
}

// RowStyle returns the style of the text cell in row (for tests)
func (lv *ListView) RowStyle(row int) tcell.Style {
	cell := lv.table.GetCell(row, 1)
	if cell == nil {
		return tcell.StyleDefault
	}
	return cell.Style
}

func (lv *ListView) GetPrimitive() tview.Primitive {
	return lv.root
}

func (lv *ListView) GetActionRegistry() *controller.ActionRegistry {
	return lv.controller.GetActionRegistry()
}

func (lv *ListView) GetViewID() model.ViewID {
	return model.ListViewID
}

func (lv *ListView) OnFocus() {
	lv.addButton.SetEnabled(lv.controller.CanAdd())
	lv.refresh()
}

// OnBlur unsubscribes from the store and draft state
func (lv *ListView) OnBlur() {
	lv.taskStore.RemoveListener(lv.storeListenerID)
	lv.draft.RemoveListener(lv.draftListenerID)
}

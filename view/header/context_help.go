package header

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/util"

	"github.com/rivo/tview"
)

const (
	colorTypeGlobal = 0
	colorTypeView   = 1
)

// hintCell is one "<key> label" entry
type hintCell struct {
	key       string
	label     string
	colorType int
}

func (c hintCell) keyLen() int   { return len([]rune(c.key)) + 2 }
func (c hintCell) labelLen() int { return len([]rune(c.label)) }

// hintColumn holds up to HeaderHeight cells of one section
type hintColumn struct {
	cells      []hintCell
	keyWidth   int
	labelWidth int
}

// ContextHelpWidget shows key hints as columns: global actions first, then the
// active view's actions starting in a fresh column.
type ContextHelpWidget struct {
	*tview.TextView
	width int
}

// NewContextHelpWidget creates a new context help display widget
func NewContextHelpWidget() *ContextHelpWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)
	return &ContextHelpWidget{TextView: tv}
}

// GetWidth returns the visible width of the rendered hints
func (chw *ContextHelpWidget) GetWidth() int {
	return chw.width
}

// SetActionsFromModel renders the global hints and viewActions. Returns the visible width.
func (chw *ContextHelpWidget) SetActionsFromModel(viewActions []model.HeaderAction) int {
	global := controller.DefaultGlobalActions().GetHeaderActions()
	globalIDs := make(map[controller.ActionID]bool, len(global))
	for _, a := range global {
		globalIDs[a.ID] = true
	}

	columns := layoutColumns(global, extractViewActionsFromModel(viewActions, globalIDs), HeaderHeight)
	text, width := renderColumns(columns, HeaderHeight)
	chw.SetText(text)
	chw.width = width
	return width
}

// Primitive returns the underlying tview primitive
func (chw *ContextHelpWidget) Primitive() tview.Primitive {
	return chw.TextView
}

// layoutColumns splits each section into columns of at most rows cells
func layoutColumns(global, view []controller.Action, rows int) []hintColumn {
	var columns []hintColumn
	columns = appendSection(columns, global, rows, colorTypeGlobal)
	columns = appendSection(columns, view, rows, colorTypeView)
	return columns
}

func appendSection(columns []hintColumn, actions []controller.Action, rows, colorType int) []hintColumn {
	for start := 0; start < len(actions); start += rows {
		var col hintColumn
		for _, a := range actions[start:min(start+rows, len(actions))] {
			cell := hintCell{
				key:       util.FormatKeyBinding(a.Key, a.Rune, a.Modifier),
				label:     a.Label,
				colorType: colorType,
			}
			col.keyWidth = max(col.keyWidth, cell.keyLen())
			col.labelWidth = max(col.labelWidth, cell.labelLen())
			col.cells = append(col.cells, cell)
		}
		columns = append(columns, col)
	}
	return columns
}

// renderColumns lays the columns side by side as tview-tagged text.
// The returned width counts visible characters plus the leading space.
func renderColumns(columns []hintColumn, rows int) (string, int) {
	if len(columns) == 0 {
		return "", 0
	}

	lines := make([]string, rows)
	width := 0
	for row := range lines {
		var b strings.Builder
		visible := 0
		for i, col := range columns {
			last := i == len(columns)-1
			if row >= len(col.cells) {
				if !last {
					pad := col.keyWidth + 1 + col.labelWidth + HeaderColumnSpacing
					b.WriteString(strings.Repeat(" ", pad))
					visible += pad
				}
				continue
			}

			cell := col.cells[row]
			scheme := getColorScheme(cell.colorType)
			fmt.Fprintf(&b, "[%s]<%s>[%s]", scheme.KeyColor, cell.key, scheme.LabelColor)
			b.WriteString(strings.Repeat(" ", col.keyWidth-cell.keyLen()+1))
			b.WriteString(cell.label)
			visible += col.keyWidth + 1 + cell.labelLen()

			if !last {
				pad := col.labelWidth - cell.labelLen() + HeaderColumnSpacing
				b.WriteString(strings.Repeat(" ", pad))
				visible += pad
			}
		}
		lines[row] = b.String()
		width = max(width, visible)
	}

	return " " + strings.Join(lines, "\n "), width + 1
}

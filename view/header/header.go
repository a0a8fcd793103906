package header

import (
	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/util/gradient"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	// HeaderHeight is the number of rows the header occupies
	HeaderHeight = 4
	// HeaderColumnSpacing separates action columns in the context help grid
	HeaderColumnSpacing = 3

	statsWidth = 18
	logoText   = "todos"
)

var logoGradient = config.Gradient{
	Start: [3]int{255, 175, 0},
	End:   [3]int{255, 95, 135},
}

// HeaderWidget renders the header: stats on the left, key hints in the middle,
// and the app name with the status line on the right. It observes HeaderConfig.
type HeaderWidget struct {
	*tview.Flex

	stats       *StatsWidget
	contextHelp *ContextHelpWidget
	info        *tview.TextView

	headerConfig *model.HeaderConfig
	listenerID   int
}

// NewHeaderWidget creates the header and subscribes it to headerConfig
func NewHeaderWidget(headerConfig *model.HeaderConfig) *HeaderWidget {
	info := tview.NewTextView()
	info.SetDynamicColors(true)
	info.SetTextAlign(tview.AlignRight)
	info.SetWrap(true)

	hw := &HeaderWidget{
		Flex:         tview.NewFlex().SetDirection(tview.FlexColumn),
		stats:        NewStatsWidget(),
		contextHelp:  NewContextHelpWidget(),
		info:         info,
		headerConfig: headerConfig,
	}

	hw.listenerID = headerConfig.AddListener(hw.rebuild)
	hw.rebuild()
	return hw
}

// rebuild re-reads the header config and re-lays out the columns
func (hw *HeaderWidget) rebuild() {
	hw.stats.SetStats(hw.headerConfig.GetStats())
	helpWidth := hw.contextHelp.SetActionsFromModel(hw.headerConfig.GetViewActions())
	hw.info.SetText(hw.infoText())

	hw.Clear()
	hw.AddItem(hw.stats, statsWidth, 0, false)
	hw.AddItem(hw.contextHelp, helpWidth, 0, false)
	hw.AddItem(hw.info, 0, 1, false)
}

// infoText renders the app name and, on the next line, the status message
func (hw *HeaderWidget) infoText() string {
	text := gradient.RenderAdaptiveGradientText(logoText, logoGradient, tcell.NewRGBColor(255, 175, 0), config.UseGradients())

	msg, isError := hw.headerConfig.GetStatus()
	if msg == "" {
		return text
	}
	colors := config.GetColors()
	color := colors.HeaderInfoValue
	if isError {
		color = colors.HeaderError
	}
	return text + "\n" + color + tview.Escape(msg)
}

// InfoText returns the plain text of the right-hand column (for tests)
func (hw *HeaderWidget) InfoText() string {
	return hw.info.GetText(true)
}

// StatsText returns the plain text of the stats column (for tests)
func (hw *HeaderWidget) StatsText() string {
	return hw.stats.GetText(true)
}

// HelpText returns the plain text of the key hints (for tests)
func (hw *HeaderWidget) HelpText() string {
	return hw.contextHelp.GetText(true)
}

// Cleanup removes the header config listener
func (hw *HeaderWidget) Cleanup() {
	hw.headerConfig.RemoveListener(hw.listenerID)
}

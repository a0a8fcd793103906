package header

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/model"

	"github.com/rivo/tview"
)

// StatsWidget displays the header stats, one "Name: value" line each
type StatsWidget struct {
	*tview.TextView
	lines int
}

// NewStatsWidget creates a new stats display widget
func NewStatsWidget() *StatsWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)

	return &StatsWidget{TextView: tv}
}

// SetStats replaces the displayed stats. Stats beyond HeaderHeight rows are dropped.
// Stats are expected in display order (model.HeaderConfig.GetStats sorts them).
func (sw *StatsWidget) SetStats(stats []model.HeaderStat) {
	if len(stats) > HeaderHeight {
		stats = stats[:HeaderHeight]
	}
	sw.lines = len(stats)
	sw.SetText(formatStats(stats, config.GetColors()))
}

// Lines returns how many stats are currently shown
func (sw *StatsWidget) Lines() int {
	return sw.lines
}

// Primitive returns the underlying tview primitive
func (sw *StatsWidget) Primitive() tview.Primitive {
	return sw.TextView
}

// formatStats aligns values after the longest stat name
func formatStats(stats []model.HeaderStat, colors *config.ColorConfig) string {
	if len(stats) == 0 {
		return ""
	}

	maxLabelLen := 0
	for _, s := range stats {
		if len(s.Name) > maxLabelLen {
			maxLabelLen = len(s.Name)
		}
	}

	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		// pad after colon to align values
		padding := strings.Repeat(" ", maxLabelLen-len(s.Name))
		lines = append(lines, fmt.Sprintf("%s%s:%s%s %s", colors.HeaderInfoLabel, s.Name, colors.HeaderInfoValue, padding, tview.Escape(s.Value)))
	}
	return strings.Join(lines, "\n")
}

package view

import (
	"github.com/boolean-maybe/todos/config"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const addButtonLabel = "[+]"

// AddButton is the add-row submit control. While disabled it draws greyed out
// and ignores activation.
type AddButton struct {
	*tview.Box
	enabled    bool
	onActivate func()
}

// NewAddButton creates a disabled add button
func NewAddButton() *AddButton {
	return &AddButton{Box: tview.NewBox()}
}

// SetEnabled sets whether activation does anything
func (b *AddButton) SetEnabled(enabled bool) *AddButton {
	b.enabled = enabled
	return b
}

// IsEnabled reports whether the button is enabled
func (b *AddButton) IsEnabled() bool {
	return b.enabled
}

// SetActivateFunc sets the handler invoked on click or Enter while enabled
func (b *AddButton) SetActivateFunc(handler func()) *AddButton {
	b.onActivate = handler
	return b
}

// Activate runs the handler if the button is enabled. Returns whether it ran.
func (b *AddButton) Activate() bool {
	if !b.enabled || b.onActivate == nil {
		return false
	}
	b.onActivate()
	return true
}

// Draw renders the label centered in the button area
func (b *AddButton) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	colors := config.GetColors()
	style := tcell.StyleDefault.Foreground(colors.AddButtonDisabled).Dim(true)
	if b.enabled {
		style = tcell.StyleDefault.Foreground(colors.AddButtonEnabled).Bold(true)
	}

	label := []rune(addButtonLabel)
	start := x
	if len(label) < width {
		start = x + (width-len(label))/2
	}
	for i, r := range label {
		if start+i >= x+width {
			break
		}
		screen.SetContent(start+i, y, r, nil, style)
	}
}

// InputHandler activates the button on Enter
func (b *AddButton) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		if event.Key() == tcell.KeyEnter {
			b.Activate()
		}
	})
}

// MouseHandler activates the button on a left click inside it
func (b *AddButton) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, _ func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !b.InRect(event.Position()) {
			return false, nil
		}
		if action == tview.MouseLeftClick {
			b.Activate()
			return true, nil
		}
		return false, nil
	})
}

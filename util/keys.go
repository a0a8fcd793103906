package util

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// FormatKeyBinding renders a key binding the way it is shown in the header, e.g. "Ctrl-S", "F1", "space", "/".
func FormatKeyBinding(key tcell.Key, ch rune, mod tcell.ModMask) string {
	var name string
	switch {
	case key == tcell.KeyRune && ch == ' ':
		name = "space"
	case key == tcell.KeyRune:
		name = string(ch)
	default:
		name = specialKeyName(key)
	}

	var prefix strings.Builder
	if mod&tcell.ModCtrl != 0 {
		prefix.WriteString("Ctrl-")
	}
	if mod&tcell.ModAlt != 0 {
		prefix.WriteString("Alt-")
	}
	if mod&tcell.ModShift != 0 {
		prefix.WriteString("Shift-")
	}
	return prefix.String() + name
}

func specialKeyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBacktab:
		return "Shift-Tab"
	case tcell.KeyDelete:
		return "Del"
	case tcell.KeyUp:
		return "↑"
	case tcell.KeyDown:
		return "↓"
	}
	if name, ok := tcell.KeyNames[key]; ok {
		return name
	}
	return "?"
}

package util

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFormatKeyBinding(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		mod  tcell.ModMask
		want string
	}{
		{"letter", tcell.KeyRune, 'd', tcell.ModNone, "d"},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, "space"},
		{"slash", tcell.KeyRune, '/', tcell.ModNone, "/"},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, "Esc"},
		{"function key", tcell.KeyF1, 0, tcell.ModNone, "F1"},
		{"backtab", tcell.KeyBacktab, 0, tcell.ModNone, "Shift-Tab"},
		{"alt letter", tcell.KeyRune, 'x', tcell.ModAlt, "Alt-x"},
		{"ctrl enter", tcell.KeyEnter, 0, tcell.ModCtrl, "Ctrl-Enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKeyBinding(tt.key, tt.ch, tt.mod); got != tt.want {
				t.Errorf("FormatKeyBinding() = %q, want %q", got, tt.want)
			}
		})
	}
}

package task

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// MinTextLength is the exclusive lower bound on trimmed task text length.
const MinTextLength = 3

// TextValidator validates task text
type TextValidator struct{}

func (v *TextValidator) ValidateField(task *Task) *ValidationError {
	text := strings.TrimSpace(task.Text)

	if text == "" {
		return &ValidationError{
			Field:   "todo",
			Value:   task.Text,
			Code:    ErrCodeRequired,
			Message: "text is required",
		}
	}

	if TextLength(text) <= MinTextLength {
		return &ValidationError{
			Field:   "todo",
			Value:   task.Text,
			Code:    ErrCodeTooShort,
			Message: fmt.Sprintf("text must be longer than %d characters", MinTextLength),
		}
	}

	return nil
}

// TextLength counts s in UTF-16 code units, so a character outside the
// Basic Multilingual Plane (most emoji) counts as two.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

// CanSubmitDraft reports whether the add control is enabled for the raw draft.
// Untrimmed on purpose: "   ab" enables the control but is still rejected on add.
func CanSubmitDraft(draft string) bool {
	return TextLength(draft) > MinTextLength
}

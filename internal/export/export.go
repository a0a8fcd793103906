// Package export prints the task list outside the UI as a markdown checklist.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/boolean-maybe/todos/task"
)

const (
	checklistTitle = "# ALL TODOS"
	emptyLine      = "_No tasks to display._"
	wordWrap       = 80
)

// Markdown renders tasks as a checklist, one "- [x] text" line per task, in order.
func Markdown(tasks []*task.Task) string {
	var b strings.Builder
	b.WriteString(checklistTitle)
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(emptyLine)
		b.WriteString("\n")
		return b.String()
	}

	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s %s\n", t.Checkbox(), escapeMarkdown(t.Text))
	}
	return b.String()
}

// Render renders the checklist for the terminal with glamour.
// theme is "light" or "dark"; anything else uses glamour's auto detection.
func Render(tasks []*task.Task, theme string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(theme)),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(tasks))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Write prints tasks to w, as raw markdown when plain is set
func Write(w io.Writer, tasks []*task.Task, theme string, plain bool) error {
	out := Markdown(tasks)
	if !plain {
		var err error
		if out, err = Render(tasks, theme); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write task list: %w", err)
	}
	return nil
}

func glamourStyle(theme string) string {
	switch theme {
	case "light":
		return "light"
	case "dark":
		return "dark"
	default:
		return "auto"
	}
}

// escapeMarkdown keeps task text literal inside a list item
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"[", `\[`,
		"]", `\]`,
		"<", `\<`,
		"#", `\#`,
	)
	return escapeBlockStart(replacer.Replace(strings.TrimSpace(text)))
}

// escapeBlockStart stops a leading "-", "+", ">" or "1." / "1)" from opening
// a nested list or quote inside the item.
func escapeBlockStart(text string) string {
	if text == "" {
		return text
	}
	switch text[0] {
	case '-', '+', '>':
		return `\` + text
	}
	digits := 0
	for digits < len(text) && digits < 9 && text[digits] >= '0' && text[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(text) && (text[digits] == '.' || text[digits] == ')') {
		return text[:digits] + `\` + text[digits:]
	}
	return text
}

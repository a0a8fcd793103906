package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// PromptForRecovery asks whether an unreadable task list should be backed up and replaced
// by an empty one. Returns (proceed, error); an aborted form counts as declining.
func PromptForRecovery(storagePath, key string, cause error) (bool, error) {
	proceed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("The saved task list cannot be read").
				Description(fmt.Sprintf("%s, key %q:\n%v\n\nThe current value is kept under a backup key.", storagePath, key, cause)).
				Affirmative("Back up and start empty").
				Negative("Quit").
				Value(&proceed),
		),
	).WithTheme(huh.ThemeCharm())

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return false, nil
		}
		return false, fmt.Errorf("form error: %w", err)
	}

	return proceed, nil
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

package bootstrap

import (
	"fmt"

	"github.com/boolean-maybe/todos/config"
)

// LoadConfig loads the application configuration with command line overrides applied.
// Returns an error if configuration loading fails.
func LoadConfig(flags *config.Flags) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags.FlagSet())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

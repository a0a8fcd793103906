package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/internal/app"
	"github.com/boolean-maybe/todos/internal/bootstrap"
	"github.com/boolean-maybe/todos/internal/export"
)

// main runs the application bootstrap and starts the TUI.
func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Print(flags.Usage())
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		_, _ = fmt.Fprint(os.Stderr, flags.Usage())
		os.Exit(2)
	}

	// Handle version flag
	if flags.Version {
		fmt.Printf("todos version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		return
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	cfg, err := bootstrap.LoadConfig(flags)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Print mode: render the list and exit without starting the UI
	if flags.Print {
		if err := printTasks(cfg, flags); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	// Bootstrap application
	result, err := bootstrap.Bootstrap(cfg, flags)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Cleanup on exit
	defer result.Cleanup()
	defer result.HeaderWidget.Cleanup()
	defer result.RootLayout.Cleanup()

	// Run application
	if err := app.Run(result.App, result.RootLayout); err != nil {
		slog.Error("application error", "error", err)
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		result.Cleanup()
		os.Exit(1)
	}

	// Save user preferences on shutdown
	if err := config.SaveHeaderVisible(result.HeaderConfig.GetUserPreference()); err != nil {
		slog.Warn("failed to save header visibility preference", "error", err)
	}
}

// printTasks writes the (optionally filtered) task list to stdout
func printTasks(cfg *config.Config, flags *config.Flags) error {
	_, closeLog := bootstrap.InitLogging(cfg)
	defer closeLog()

	_, taskStore, err := bootstrap.InitStores(flags.ResetCorrupt)
	if err != nil {
		return err
	}
	return export.Write(os.Stdout, taskStore.Filter(flags.Search), config.GetEffectiveTheme(), flags.Plain)
}

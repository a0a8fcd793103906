package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boolean-maybe/todos/config"
)

// ParseLogLevel maps a configured level name to a slog.Level. Unknown names mean error.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// InitLogging installs the default slog logger writing to the log file in the cache dir.
// The terminal belongs to the UI, so nothing is logged to stderr. The returned
// function closes the log file.
func InitLogging(cfg *config.Config) (slog.Level, func()) {
	level := ParseLogLevel(cfg.Logging.Level)

	var out io.Writer = io.Discard
	closeFn := func() {}
	if err := config.EnsureDirs(); err == nil {
		//nolint:gosec // G302: log file is user-owned
		f, err := os.OpenFile(config.GetLogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	slog.Debug("logging initialized", "level", level.String(), "file", config.GetLogFile())
	return level, closeFn
}

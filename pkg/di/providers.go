package di

import (
	"log/slog"
	"os"

	"github.com/goliatone/grab/internal/executor"
	"github.com/goliatone/grab/pkg/config"
)

// provideLogger creates a structured logger configured from the logging
// config. Logs go to stderr so command output on stdout stays clean.
func provideLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch {
	case cfg.Logging.Quiet:
		level = slog.LevelWarn
	case cfg.Logging.Verbose:
		level = slog.LevelDebug
	default:
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// provideCloner creates the default git-backed cloner.
func provideCloner(cfg *config.Config, logger *slog.Logger) executor.Cloner {
	return executor.NewCloner(cfg.Git.Binary, logger)
}

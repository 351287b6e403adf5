// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(cfg.Log.Level)             // level from config or LOG_LEVEL
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the named level (debug, info, warn,
// error). Unknown names mean INFO.
func Setup(level string) {
	SetupWithLevel(ParseLevel(level))
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}

// New returns a tint logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

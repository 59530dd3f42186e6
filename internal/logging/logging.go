// Package logging holds the process-wide structured logger. The level can be
// set from a flag via Configure or from PHASESPACE_LOG_LEVEL via InitFromEnv.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var def atomic.Value

func init() {
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Configure replaces the default logger with one at the given level.
func Configure(level string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

// InitFromEnv configures the logger from PHASESPACE_LOG_LEVEL.
func InitFromEnv() {
	Configure(os.Getenv("PHASESPACE_LOG_LEVEL"))
}

// L returns the current default logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

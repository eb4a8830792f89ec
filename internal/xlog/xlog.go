// Package xlog sets up the SDK's structured logger. It mirrors the
// level/format-configurable slog handler the eudi-zk proof server wires for
// its own HTTP layer, adapted here for a library/CLI with no inbound
// requests to log.
package xlog

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a slog.Logger at the requested level and format ("text" or
// "json"; anything else falls back to text).
func New(level, format string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// Default is a text, info-level logger used by packages that don't take a
// logger explicitly (the CLI's own commands always construct one from
// flags instead).
var Default = New("info", "text")

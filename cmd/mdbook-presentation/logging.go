package main

import (
	"io"
	"log/slog"
	"strings"
)

// logEnvVar selects the log level when neither --quiet nor --verbose is set.
const logEnvVar = "MDBOOK_PRESENTATION_LOG"

// resolveLogLevel picks the level: flags first, then the environment, then info.
func resolveLogLevel(f commonFlags, envValue string) slog.Level {
	switch {
	case f.verbose:
		return slog.LevelDebug
	case f.quiet:
		return slog.LevelError
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(envValue))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newLogger returns a text logger on w. Stdout carries the book, so logs
// always go to stderr.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

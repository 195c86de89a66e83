package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger writing to w at Info, or Debug when debug
// is set.
func newLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

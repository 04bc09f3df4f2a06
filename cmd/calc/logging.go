package main

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger writes debug traces to errOut when verbose, and always to
// jsonOut when it is set.
func newLogger(errOut io.Writer, verbose bool, jsonOut io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}),
	}
	if jsonOut != nil {
		handlers = append(handlers, slog.NewJSONHandler(jsonOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

package rcsp

import (
	"context"
	"log/slog"
)

// discardHandler is a no-op slog.Handler, used as the Solver's default
// logger so logging stays a genuine opt-in (spec.md §9): nothing is
// logged unless a caller installs one via WithLogger/SetLogger.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func discardLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

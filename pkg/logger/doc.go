// Package logger builds configured slog.Logger instances and supplies
// attribute helpers for the vocabulary of validation runs (schema
// names, expectations, targets, outcomes).
//
// The factory defaults to JSON output at INFO level, which is what a
// log collector expects; tests and local runs switch to text with
// WithTextFormat. Noop returns a logger that discards everything, for
// components where logging is optional.
package logger

// Package logging provides the converter's structured logger: a thin
// slog wrapper writing human-readable lines to stderr, with a quiet
// mode that keeps only warnings and errors (skipped-file reports stay
// visible even when quiet).
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Field is a structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// Convenience helpers for common field types.
func String(key, value string) Field  { return Field{Key: key, Value: value} }
func Int(key string, value int) Field { return Field{Key: key, Value: value} }
func Err(err error) Field             { return Field{Key: "error", Value: err} }
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the small structured logging surface the converter uses.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// New constructs a Logger writing text lines to w. Quiet raises the
// level to warn.
func New(w io.Writer, quiet bool) Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogger{l: slog.New(handler)}
}

// NewStderr constructs the default process logger.
func NewStderr(quiet bool) Logger { return New(os.Stderr, quiet) }

// Noop returns a logger that drops all logs.
func Noop() Logger { return noopLogger{} }

type slogger struct {
	l *slog.Logger
}

func (s *slogger) With(fields ...Field) Logger {
	return &slogger{l: s.l.With(toArgs(fields...)...)}
}

func (s *slogger) Info(msg string, fields ...Field)  { s.l.Info(msg, toArgs(fields...)...) }
func (s *slogger) Warn(msg string, fields ...Field)  { s.l.Warn(msg, toArgs(fields...)...) }
func (s *slogger) Error(msg string, fields ...Field) { s.l.Error(msg, toArgs(fields...)...) }

type noopLogger struct{}

func (noopLogger) With(...Field) Logger   { return noopLogger{} }
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}

func toArgs(fields ...Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}

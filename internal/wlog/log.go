// Package wlog wraps log/slog the way the rest of this module expects to
// consume it: a Logger that can be narrowed to a named component with
// Module, and that satisfies wfcore.Logger directly.
package wlog

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a *slog.Logger.
type Logger struct {
	inner *slog.Logger
}

var defaultLogger = New(slog.LevelInfo)

// New creates a Logger at the given level, writing JSON lines to stderr.
func New(level slog.Level) *Logger {
	return NewWithHandler(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewWithHandler wraps an arbitrary slog.Handler, e.g. a text handler for
// interactive use or a discard handler in tests.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// Discard returns a Logger that drops everything, for tests that need a
// non-nil wfcore.Logger but don't care about its output.
func Discard() *Logger {
	return NewWithHandler(slog.NewTextHandler(io.Discard, nil))
}

// SetDefault installs l as the package default returned by Default.
func SetDefault(l *Logger) { defaultLogger = l }

// Default returns the package-level default Logger.
func Default() *Logger { return defaultLogger }

// Module returns a child Logger that tags every record with component=name.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("component", name)}
}

// With returns a child Logger with the given key/value pairs attached to
// every subsequent record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

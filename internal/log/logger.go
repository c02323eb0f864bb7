// Package log wraps log/slog with a component field shared by all records.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
)

// Standard component names.
const (
	ComponentApp    = "app"
	ComponentClient = "client"
	ComponentTUI    = "tui"
)

// Logger wraps slog.Logger with a fixed component attribute.
type Logger struct {
	*slog.Logger
	handler   slog.Handler
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Writer    io.Writer
}

// DefaultConfig returns sensible defaults: info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
		Writer:    os.Stderr,
	}
}

// New creates a logger with the given configuration.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level})
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, cfg.Component),
		handler:   handler,
		component: cfg.Component,
	}
}

// Discard returns a logger that drops everything; used by the TUI when no
// log file is configured, since the terminal is owned by the UI.
func Discard() *Logger {
	return New(Config{Level: slog.LevelError, Component: ComponentApp, Writer: io.Discard})
}

// WithComponent returns a logger tagged with a different component name. The
// tag replaces the parent's component rather than stacking on top of it.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    slog.New(l.handler).With(FieldComponent, component),
		handler:   l.handler,
		component: component,
	}
}

package log

import (
	"context"
	"log/slog"

	"github.com/halcyonpay/payctl/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = DefaultConfig().Output
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &Logger{
		slog:   slog.New(handler),
		config: config,
	}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// WithError adds error details to the logger.
// If the error is a PayctlError, its code and cause are included.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	if payErr, ok := err.(*errors.PayctlError); ok {
		args := []any{
			"error", payErr.Message,
			"error_code", string(payErr.Code),
		}
		if payErr.Cause != nil {
			args = append(args, "cause", payErr.Cause.Error())
		}
		return l.With(args...)
	}

	return l.With("error", err.Error())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// LogError logs an error with full detail, expanding PayctlError fields
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	if payErr, ok := err.(*errors.PayctlError); ok {
		args := []any{
			"error_code", string(payErr.Code),
			"error_message", payErr.Message,
		}
		if len(payErr.Suggestions) > 0 {
			args = append(args, "suggestions", payErr.Suggestions)
		}
		if payErr.Cause != nil {
			args = append(args, "cause", payErr.Cause.Error())
		}
		l.Error("operation failed", args...)
		return
	}

	l.Error("operation failed", "error", err.Error())
}

// Enabled returns whether the logger is enabled for the given level
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.slog.Enabled(ctx, level.ToSlogLevel())
}

// Handler returns the underlying slog.Handler
func (l *Logger) Handler() slog.Handler {
	return l.slog.Handler()
}

// Config returns the logger configuration
func (l *Logger) Config() Config {
	return l.config
}

// Package log provides a structured logging interface for surrogate
// modeling operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing structured
// attributes specific to uncertainty quantification workflows: parameter
// distributions, basis cardinalities, quadrature modes, fit diagnostics.
// The interface integrates with Go's standard log/slog package and with
// zerolog through the warning bridge in pkg/errors.
//
// Key features:
//   - slog-compatible interface
//   - domain-specific structured attributes (basis terms, quadrature points)
//   - context-aware logging with field chaining
//   - test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "Poly",
//	    log.DimensionsKey, 3,
//	)
//	logger.Info("quadrature rule built",
//	    log.QuadratureModeKey, "tensor-grid",
//	    log.QuadraturePointsKey, 125,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog.
//
// The interface is implementation-agnostic so backends can be swapped while
// call sites stay stable. Contextual loggers with pre-populated fields are
// created through With.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs carry detailed diagnostic information and are usually
	// disabled in production environments.
	//
	// Example:
	//
	//	logger.Debug("expanding tensor grid",
	//	    "dimension", 2,
	//	    "points", 25,
	//	)
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//
	//	logger.Info("coefficients fitted",
	//	    log.DurationMsKey, 12,
	//	    log.BasisTermsKey, 21,
	//	)
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warnings indicate conditions that do not stop the computation, such
	// as an oversized tensor grid.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is passed via ErrAttr, stack trace information is
	// extracted and attached by the handler.
	//
	// Example:
	//
	//	logger.Error("quadrature construction failed",
	//	    log.ErrAttr(err),
	//	    log.QuadratureModeKey, "tensor-grid",
	//	)
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in all
	// subsequent log messages.
	//
	// Example:
	//
	//	contextLogger := logger.With(
	//	    log.ModelNameKey, "Poly",
	//	    log.BasisTypeKey, "total-order",
	//	)
	//	contextLogger.Info("evaluation started") // includes model info
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive attribute values that would be
	// discarded.
	//
	// Example:
	//
	//	if logger.Enabled(ctx, LevelDebug) {
	//	    logger.Debug("basis table", "elements", b.Elements())
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists for dependency
// injection and for swapping in capture loggers during tests.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}

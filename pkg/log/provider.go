// Package-level logger access. Library packages obtain loggers through
// GetLogger / GetLoggerWithName; applications and tests can swap the
// provider to redirect or capture output.

package log

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/polyuq/polyuq/pkg/errors"
)

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug implements Logger.Debug.
func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

// Error implements Logger.Error.
func (s *slogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, fields...)
}

// With implements Logger.With.
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// slogProvider is the default LoggerProvider: JSON output on stderr with a
// runtime-adjustable level. Libraries default to warnings only.
type slogProvider struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

func newSlogProvider() *slogProvider {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogProvider{
		level:  level,
		logger: slog.New(WrapByErrFmtHandler(handler)),
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{logger: p.logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: p.logger.With(ComponentKey, name)}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *slogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = newSlogProvider()
)

// SetLoggerProvider replaces the package-level provider. Pass a
// TestLoggerProvider in tests to capture library log output.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named component logger from the current
// provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLevel adjusts the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

// UseZerologWarnings routes pkg/errors warnings through a zerolog logger.
// Warning types implementing zerolog.LogObjectMarshaler are embedded as
// structured objects.
func UseZerologWarnings(zl zerolog.Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		ev := zl.Warn()
		if obj, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(w.Error())
	})
}

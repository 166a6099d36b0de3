// Testing utilities for structured logging. TestLogger captures log output
// in memory so tests can verify what library code emitted without touching
// the process-wide logger.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// TestLogger is a Logger implementation for tests. All messages are
// captured in an internal buffer for later inspection. Safe for use from
// multiple goroutines.
type TestLogger struct {
	mu     *sync.Mutex
	buffer *bytes.Buffer
	level  Level
	fields map[string]interface{}
}

// NewTestLogger creates a TestLogger with the given minimum level.
//
// Example:
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	logger.Info("rule built", log.QuadraturePointsKey, 25)
//	output := buffer.String()
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		mu:     &sync.Mutex{},
		buffer: buffer,
		level:  level,
		fields: make(map[string]interface{}),
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.writeLog("DEBUG", msg, fields...)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.writeLog("INFO", msg, fields...)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.writeLog("WARN", msg, fields...)
	}
}

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level <= LevelError {
		t.writeLog("ERROR", msg, fields...)
	}
}

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	newFields := make(map[string]interface{})

	for k, v := range t.fields {
		newFields[k] = v
	}

	for i := 0; i < len(fields)-1; i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		value := fields[i+1]

		if err, ok := value.(error); ok {
			newFields[key] = err.Error()
		} else {
			newFields[key] = value
		}
	}

	return &TestLogger{
		mu:     t.mu,
		buffer: t.buffer,
		level:  t.level,
		fields: newFields,
	}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(ctx context.Context, level Level) bool {
	return t.level <= level
}

// writeLog writes a log entry to the buffer in JSON format.
func (t *TestLogger) writeLog(level, msg string, fields ...any) {
	entry := map[string]interface{}{
		"level":   level,
		"message": msg,
	}

	for k, v := range t.fields {
		entry[k] = v
	}

	for i := 0; i < len(fields)-1; i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		value := fields[i+1]

		if err, ok := value.(error); ok {
			entry[key] = err.Error()
		} else {
			entry[key] = value
		}
	}

	jsonData, _ := json.Marshal(entry)
	t.mu.Lock()
	t.buffer.WriteString(string(jsonData) + "\n")
	t.mu.Unlock()
}

// GetBuffer returns the internal buffer for direct access to captured logs.
func (t *TestLogger) GetBuffer() *bytes.Buffer {
	return t.buffer
}

// GetLogEntries parses the captured output into structured log entries.
//
// Example:
//
//	entries, err := testLogger.GetLogEntries()
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if len(entries) != 2 {
//	    t.Errorf("Expected 2 log entries, got %d", len(entries))
//	}
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	t.mu.Lock()
	captured := t.buffer.String()
	t.mu.Unlock()

	var entries []map[string]interface{}
	lines := strings.Split(strings.TrimSpace(captured), "\n")

	for _, line := range lines {
		if line == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ContainsMessage reports whether the captured logs contain a message with
// the specified content.
func (t *TestLogger) ContainsMessage(message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(t.buffer.String(), message)
}

// ContainsField reports whether any captured entry has the field with the
// specified value.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if fieldValue, exists := entry[key]; exists {
			if fieldValue == value {
				return true
			}
		}
	}

	return false
}

// Clear clears all captured log content.
func (t *TestLogger) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Reset()
}

// TestLoggerProvider implements LoggerProvider for testing scenarios.
// Install it with SetLoggerProvider to capture library output.
type TestLoggerProvider struct {
	logger *TestLogger
	buffer *bytes.Buffer
}

// NewTestLoggerProvider creates a test logger provider capturing at the
// given level.
func NewTestLoggerProvider(level Level) (*TestLoggerProvider, *bytes.Buffer) {
	logger, buffer := NewTestLogger(level)
	return &TestLoggerProvider{
		logger: logger,
		buffer: buffer,
	}, buffer
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *TestLoggerProvider) GetLogger() Logger {
	return p.logger
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *TestLoggerProvider) GetLoggerWithName(name string) Logger {
	return p.logger.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *TestLoggerProvider) SetLevel(level Level) {
	p.logger.level = level
}

// GetBuffer returns the buffer for accessing captured logs.
func (p *TestLoggerProvider) GetBuffer() *bytes.Buffer {
	return p.buffer
}

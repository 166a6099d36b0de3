package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog handler as the process default.
// Level/message keys are renamed to severity/message and errors logged via
// ErrAttr get their stack traces attached by the wrapping handler.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "caller",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel maps a level name to its slog.Level. Unknown names panic;
// this runs once at setup time with operator-supplied configuration.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

package ghin

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger receives structured debug output. The client never logs on its
// own: provide a Logger and enable debug flags for insight without noise.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NewDefaultLogger returns a Logger writing human-readable output to
// stderr.
func NewDefaultLogger() Logger {
	return NewLoggerWithWriter(os.Stderr)
}

// NewLoggerWithWriter returns a Logger writing to w.
func NewLoggerWithWriter(w io.Writer) Logger {
	return &charmLogger{
		inner: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.DebugLevel,
			Prefix:          "ghin",
		}),
	}
}

type charmLogger struct {
	inner *log.Logger
}

func (l *charmLogger) Debug(msg string, keyvals ...any) { l.inner.Debug(msg, keyvals...) }
func (l *charmLogger) Info(msg string, keyvals ...any)  { l.inner.Info(msg, keyvals...) }
func (l *charmLogger) Warn(msg string, keyvals ...any)  { l.inner.Warn(msg, keyvals...) }
func (l *charmLogger) Error(msg string, keyvals ...any) { l.inner.Error(msg, keyvals...) }

// DebugConfig gates what the client logs when a Logger is set.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogCache     bool
	RequestIDGen func() string
}

// DefaultDebugConfig logs requests and cache activity with UUID request
// IDs once enabled.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogCache:     true,
		RequestIDGen: uuid.NewString,
	}
}

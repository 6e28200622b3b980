// Package log wraps logrus with context-aware helpers that attach the
// request ID carried in the context to every entry.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"flightdesk/reqid"
)

// Logger is the shared logger instance
var Logger = logrus.New()

// Init configures the logger. Output must stay off stdout: stdout is the
// MCP stdio transport, so everything goes to w (normally stderr).
func Init(w io.Writer, level string) {
	Logger.SetOutput(w)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Logger.SetLevel(parsed)
}

func entry(ctx context.Context) *logrus.Entry {
	if id := reqid.From(ctx); id != "" {
		return Logger.WithField("request_id", id)
	}
	return logrus.NewEntry(Logger)
}

// Debugf logs a formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debugf(format, args...)
}

// Infof logs a formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

// Warnf logs a formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

// Errorf logs a formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Errorf(format, args...)
}

// Package logging defines the structured-logging interface used across the
// client. Implementations wrap log/slog or go.uber.org/zap.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "profile loaded", "user_id", id, "bmi", bmi)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w. FormatText produces slog text lines,
// FormatJSON produces zap JSON lines. Level is one of debug, info, warn, error.
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		l, err := NewTextLogger(w, level)
		if err != nil {
			return nil, err
		}
		return l, nil
	case FormatJSON:
		l, err := NewJSONLogger(w, level)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Sync flushes l if its backend buffers records; other loggers are left
// alone.
func Sync(l Logger) error {
	if s, ok := l.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZapLogger(zap.NewNop())
}

func orDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

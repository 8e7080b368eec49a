package logging

import "context"

// NullLogger discards every entry. It stands in for the file logger when
// logging is disabled so callers never have to nil-check.
type NullLogger struct{}

// NewNullLogger creates a new null logger
func NewNullLogger() NullLogger {
	return NullLogger{}
}

func (NullLogger) Debug(ctx context.Context, msg string, fields Fields)            {}
func (NullLogger) Info(ctx context.Context, msg string, fields Fields)             {}
func (NullLogger) Warn(ctx context.Context, msg string, fields Fields)             {}
func (NullLogger) Error(ctx context.Context, msg string, err error, fields Fields) {}

// WithFields returns the same null logger
func (l NullLogger) WithFields(fields Fields) Logger { return l }

// Close does nothing
func (NullLogger) Close() error { return nil }

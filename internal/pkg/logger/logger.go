// Package logger wraps log/slog behind a small interface so that services
// and repositories do not depend on a concrete sink.
package logger

// Logger defines the logging interface. args are slog-style key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	Panic(msg string, args ...any)
	With(args ...any) Logger
}

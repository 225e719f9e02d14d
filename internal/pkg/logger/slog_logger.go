package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

type slogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a logger writing human-readable lines to stdout.
func NewConsoleLogger(level string) Logger {
	return newSlogLogger(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// NewFileLogger creates a logger writing JSON lines to a rotated file.
func NewFileLogger(level, filePath string, maxSize, maxBackups, maxAge int, compress bool) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// NewWriterLogger creates a text logger on an arbitrary writer.
func NewWriterLogger(w io.Writer, level string) Logger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func newSlogLogger(handler slog.Handler) Logger {
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Fatal logs at error level and exits.
func (l *slogLogger) Fatal(msg string, args ...any) {
	l.logger.Error(msg, args...)
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(msg string, args ...any) {
	l.logger.Error(msg, args...)
	panic(fmt.Sprintf("%s %v", msg, args))
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

package config

import (
	"errors"
	"fmt"
)

// Log levels accepted by LoggerSettings.LogLevel.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted by LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log sink and level. The rotation fields only
// apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the level and sink, and the rotation bounds for file logging.
func (s *LoggerSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	var errs []error
	if s.FilePath == "" {
		errs = append(errs, errors.New("file path is required for file logger"))
	}
	if s.MaxSize < 1 || s.MaxSize > 100 {
		errs = append(errs, errors.New("max size must be between 1 and 100 MB"))
	}
	if s.MaxBackups < 1 || s.MaxBackups > 10 {
		errs = append(errs, errors.New("max backups must be between 1 and 10"))
	}
	if s.MaxAge < 1 || s.MaxAge > 365 {
		errs = append(errs, errors.New("max age must be between 1 and 365 days"))
	}
	return errors.Join(errs...)
}

package commands

import (
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// loadConfig reads the file named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if settings == nil {
		settings = &config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		}
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

package testutil

import (
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the shared console logger and returns it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelError,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, logger.InitLogger(settings))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}

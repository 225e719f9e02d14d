package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
)

type localMediaConnector struct {
	dir        string
	publicPath string
	logger     logger.Logger
}

// NewMediaConnector creates the connector selected by settings.Provider.
func NewMediaConnector(settings *config.UploadSettings, log logger.Logger) (media.Connector, error) {
	switch settings.Provider {
	case "", config.LocalStorageProvider:
		return NewLocalMediaConnector(settings.Dir, settings.PublicPath, log)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", settings.Provider)
	}
}

// NewLocalMediaConnector creates dir if missing and returns a connector
// writing into it.
func NewLocalMediaConnector(dir, publicPath string, log logger.Logger) (media.Connector, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &localMediaConnector{
		dir:        dir,
		publicPath: strings.TrimRight(publicPath, "/"),
		logger:     log,
	}, nil
}

func (c *localMediaConnector) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target, err := c.resolve(fileName)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	c.logger.Info("stored media file", "file", fileName, "size", len(data))
	return path.Join(c.publicPath, fileName), nil
}

func (c *localMediaConnector) Delete(ctx context.Context, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := c.resolve(fileName)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("media file already gone", "file", fileName)
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", fileName, err)
	}

	c.logger.Info("deleted media file", "file", fileName)
	return nil
}

// resolve rejects names that would escape the upload directory.
func (c *localMediaConnector) resolve(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || fileName == "." || fileName == ".." {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	return filepath.Join(c.dir, fileName), nil
}

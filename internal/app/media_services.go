package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/google/uuid"
)

// mediaService implements media.Service
type mediaService struct {
	repo      media.Repository
	connector media.Connector
	processor media.ImageProcessor
	logger    logger.Logger
}

// NewMediaService creates a new instance of media.Service
func NewMediaService(repo media.Repository, connector media.Connector, processor media.ImageProcessor, log logger.Logger) (media.Service, error) {
	return &mediaService{repo: repo, connector: connector, processor: processor, logger: log}, nil
}

// Upload converts every file to WebP, stores it and records its metadata.
// If any file fails, the files and rows created by this call are removed.
func (s *mediaService) Upload(ctx context.Context, form *multipart.Form, uploadedBy uint) ([]*media.Media, error) {
	if form == nil || len(form.File["files"]) == 0 {
		return nil, apperr.Validationf("no files provided in upload request")
	}

	stored := make([]*media.Media, 0, len(form.File["files"]))
	for _, header := range form.File["files"] {
		m, err := s.store(ctx, header, uploadedBy)
		if err != nil {
			s.rollback(ctx, stored)
			return nil, fmt.Errorf("failed to upload %s: %w", header.Filename, err)
		}
		stored = append(stored, m)
	}
	return stored, nil
}

func (s *mediaService) store(ctx context.Context, header *multipart.FileHeader, uploadedBy uint) (*media.Media, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	img, err := s.processor.ToWebP(file)
	if err != nil {
		return nil, err
	}

	fileName := uuid.NewString() + ".webp"
	url, err := s.connector.Save(ctx, fileName, img.Data)
	if err != nil {
		return nil, err
	}

	m := &media.Media{
		Title:      titleFromFileName(header.Filename),
		FileName:   fileName,
		URL:        url,
		MimeType:   media.WebPMimeType,
		Size:       int64(len(img.Data)),
		Width:      img.Width,
		Height:     img.Height,
		UploadedBy: uploadedBy,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if delErr := s.connector.Delete(ctx, fileName); delErr != nil {
			s.logger.Error("failed to remove orphaned media file", "file", fileName, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("media uploaded", "id", m.ID, "file", fileName, "size", m.Size)
	return m, nil
}

func (s *mediaService) rollback(ctx context.Context, stored []*media.Media) {
	for _, m := range stored {
		if err := s.repo.DeleteByID(ctx, m.ID); err != nil {
			s.logger.Error("failed to roll back media row", "id", m.ID, "error", err)
		}
		if err := s.connector.Delete(ctx, m.FileName); err != nil {
			s.logger.Error("failed to roll back media file", "file", m.FileName, "error", err)
		}
	}
}

func titleFromFileName(name string) string {
	title := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if title == "" || title == "." {
		return "untitled"
	}
	return title
}

func (s *mediaService) GetByID(ctx context.Context, id uint) (*media.Media, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *mediaService) List(ctx context.Context, query *crud.ListQuery) ([]*media.Media, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

// DeleteByID removes the row first, then the file. A file that cannot be
// removed is logged and left behind.
func (s *mediaService) DeleteByID(ctx context.Context, id uint) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.connector.Delete(ctx, m.FileName); err != nil {
		s.logger.Warn("media file not removed", "file", m.FileName, "error", err)
	}
	return nil
}

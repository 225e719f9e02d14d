package persistence

import (
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormMediaRepository creates a GORM-based media.Repository
func NewGormMediaRepository(db *gorm.DB, log logger.Logger) (media.Repository, error) {
	return newGormRepository[media.Media, models.MediaModel](db, log, "media", listSpec{
		searchable: []string{"title", "file_name"},
		sortable:   []string{"title", "size"},
		filterable: []string{"uploaded_by"},
	}), nil
}

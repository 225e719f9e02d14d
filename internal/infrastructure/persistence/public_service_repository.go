package persistence

import (
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormPublicServiceRepository creates a GORM-based repository for public services
func NewGormPublicServiceRepository(db *gorm.DB, log logger.Logger) (crud.Repository[publicservices.PublicService], error) {
	return newGormRepository[publicservices.PublicService, models.PublicServiceModel](db, log, "public service", listSpec{
		searchable: []string{"title", "description"},
		sortable:   []string{"title", "price"},
		filterable: []string{"status"},
	}), nil
}

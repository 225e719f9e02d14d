package persistence

import (
	"context"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAddressRepository struct {
	*gormRepository[addresses.Address, models.AddressModel, *models.AddressModel]
}

// NewGormAddressRepository creates a GORM-based addresses.Repository
func NewGormAddressRepository(db *gorm.DB, log logger.Logger) (addresses.Repository, error) {
	return &gormAddressRepository{
		gormRepository: newGormRepository[addresses.Address, models.AddressModel](db, log, "address", listSpec{
			searchable: []string{"name", "bn_name"},
			sortable:   []string{"name", "type"},
			filterable: []string{"type", "parent_id"},
		}),
	}, nil
}

func (r *gormAddressRepository) CountChildren(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AddressModel{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count child addresses: %w", err)
	}
	return count, nil
}

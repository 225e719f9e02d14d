package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	*gormRepository[users.User, models.UserModel, *models.UserModel]
}

// NewGormUserRepository creates a GORM-based users.Repository
func NewGormUserRepository(db *gorm.DB, log logger.Logger) (users.Repository, error) {
	return &gormUserRepository{
		gormRepository: newGormRepository[users.User, models.UserModel](db, log, "user", listSpec{
			searchable: []string{"name", "phone", "email"},
			sortable:   []string{"name", "phone", "balance", "updated_at"},
			filterable: []string{"role", "status", "division_id", "district_id"},
			readOnly:   []string{"balance", "password_hash"},
		}),
	}, nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, phone string) (*users.User, error) {
	var m models.UserModel
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with phone %s %w", phone, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *gormUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user", id)
	}

	r.logger.Info("updated user password", "id", id)
	return nil
}

func (r *gormUserRepository) CountByRole(ctx context.Context) (map[users.Role]int64, error) {
	counts, err := countBy(ctx, r.db, &models.UserModel{}, "role")
	if err != nil {
		return nil, err
	}
	result := map[users.Role]int64{users.RoleAdmin: 0, users.RoleEntrepreneur: 0}
	for role, n := range counts {
		result[users.Role(role)] = n
	}
	return result, nil
}

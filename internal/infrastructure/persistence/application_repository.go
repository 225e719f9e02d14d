package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormApplicationRepository struct {
	*gormRepository[applications.Application, models.ApplicationModel, *models.ApplicationModel]
}

// NewGormApplicationRepository creates a GORM-based applications.Repository
func NewGormApplicationRepository(db *gorm.DB, log logger.Logger) (applications.Repository, error) {
	return &gormApplicationRepository{
		gormRepository: newGormRepository[applications.Application, models.ApplicationModel](db, log, "application", listSpec{
			searchable: []string{"tracking_no", "applicant_name", "applicant_phone"},
			sortable:   []string{"status", "charge", "applicant_name", "updated_at"},
			filterable: []string{"status", "service_id", "user_id"},
		}),
	}, nil
}

func (r *gormApplicationRepository) CreateCharged(ctx context.Context, app *applications.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}

	m := &models.ApplicationModel{}
	m.FromDomain(app)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.Charge > 0 {
			res := tx.Model(&models.UserModel{}).
				Where("id = ? AND balance >= ?", m.UserID, m.Charge).
				Update("balance", gorm.Expr("balance - ?", m.Charge))
			if res.Error != nil {
				return fmt.Errorf("failed to debit balance: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("charge %.2f: %w", m.Charge, apperr.ErrInsufficientBalance)
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return r.translate("create", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	*app = *m.ToDomain()

	r.logger.Info("created application", "id", m.ID, "tracking_no", m.TrackingNo, "charge", m.Charge)
	return nil
}

func (r *gormApplicationRepository) UpdateStatus(ctx context.Context, id uint, from, to applications.Status, note *string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.ApplicationModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(r.entity, id)
			}
			return fmt.Errorf("failed to fetch application: %w", err)
		}

		changes := map[string]any{"status": string(to)}
		if note != nil {
			changes["note"] = *note
		}
		res := tx.Model(&models.ApplicationModel{}).
			Where("id = ? AND status = ?", id, string(from)).
			Updates(changes)
		if res.Error != nil {
			return fmt.Errorf("failed to update application: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("application is %s: %w", m.Status, apperr.ErrInvalidStatusTransition)
		}

		if to != applications.StatusRejected || m.Charge <= 0 {
			return nil
		}
		res = tx.Model(&models.UserModel{}).
			Where("id = ?", m.UserID).
			Update("balance", gorm.Expr("balance + ?", m.Charge))
		if res.Error != nil {
			return fmt.Errorf("failed to refund charge: %w", res.Error)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("moved application", "id", id, "from", from, "to", to)
	return nil
}

func (r *gormApplicationRepository) CountByStatus(ctx context.Context) (map[applications.Status]int64, error) {
	counts, err := countBy(ctx, r.db, &models.ApplicationModel{}, "status")
	if err != nil {
		return nil, err
	}
	result := map[applications.Status]int64{
		applications.StatusPending:    0,
		applications.StatusProcessing: 0,
		applications.StatusCompleted:  0,
		applications.StatusRejected:   0,
	}
	for status, n := range counts {
		result[applications.Status(status)] = n
	}
	return result, nil
}

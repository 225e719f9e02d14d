package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormPaymentMethodRepository creates a GORM-based payments.MethodRepository
func NewGormPaymentMethodRepository(db *gorm.DB, log logger.Logger) (payments.MethodRepository, error) {
	return newGormRepository[payments.PaymentMethod, models.PaymentMethodModel](db, log, "payment method", listSpec{
		searchable: []string{"name", "account_number"},
		sortable:   []string{"name"},
		filterable: []string{"status", "account_type"},
	}), nil
}

type gormRechargeRepository struct {
	*gormRepository[payments.RechargeRequest, models.RechargeRequestModel, *models.RechargeRequestModel]
}

// NewGormRechargeRepository creates a GORM-based payments.RechargeRepository
func NewGormRechargeRepository(db *gorm.DB, log logger.Logger) (payments.RechargeRepository, error) {
	return &gormRechargeRepository{
		gormRepository: newGormRepository[payments.RechargeRequest, models.RechargeRequestModel](db, log, "recharge request", listSpec{
			searchable: []string{"transaction_id", "sender_number"},
			sortable:   []string{"amount", "status", "updated_at"},
			filterable: []string{"status", "payment_method_id", "user_id"},
		}),
	}, nil
}

func (r *gormRechargeRepository) Review(ctx context.Context, id uint, to payments.RechargeStatus, note *string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.RechargeRequestModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(r.entity, id)
			}
			return fmt.Errorf("failed to fetch recharge request: %w", err)
		}

		changes := map[string]any{"status": string(to)}
		if note != nil {
			changes["note"] = *note
		}
		res := tx.Model(&models.RechargeRequestModel{}).
			Where("id = ? AND status = ?", id, string(payments.RechargePending)).
			Updates(changes)
		if res.Error != nil {
			return fmt.Errorf("failed to update recharge request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("recharge request is %s: %w", m.Status, apperr.ErrInvalidStatusTransition)
		}

		if to != payments.RechargeApproved {
			return nil
		}
		res = tx.Model(&models.UserModel{}).
			Where("id = ?", m.UserID).
			Update("balance", gorm.Expr("balance + ?", m.Amount))
		if res.Error != nil {
			return fmt.Errorf("failed to credit balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user", m.UserID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("reviewed recharge request", "id", id, "status", to)
	return nil
}

func (r *gormRechargeRepository) DeletePending(ctx context.Context, id uint) error {
	var m models.RechargeRequestModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(r.entity, id)
		}
		return fmt.Errorf("failed to fetch recharge request: %w", err)
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(payments.RechargePending)).
		Delete(&models.RechargeRequestModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete recharge request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cannot delete a %s recharge request: %w", m.Status, apperr.ErrInvalidStatusTransition)
	}

	r.logger.Info("deleted recharge request", "id", id)
	return nil
}

func (r *gormRechargeRepository) CountByStatus(ctx context.Context) (map[payments.RechargeStatus]int64, error) {
	counts, err := countBy(ctx, r.db, &models.RechargeRequestModel{}, "status")
	if err != nil {
		return nil, err
	}
	result := map[payments.RechargeStatus]int64{
		payments.RechargePending:  0,
		payments.RechargeApproved: 0,
		payments.RechargeRejected: 0,
	}
	for status, n := range counts {
		result[payments.RechargeStatus(status)] = n
	}
	return result, nil
}

func (r *gormRechargeRepository) SumApproved(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.RechargeRequestModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(payments.RechargeApproved)).
		Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved recharges: %w", err)
	}
	return total, nil
}

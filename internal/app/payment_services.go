package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// NewPaymentMethodService creates the payment method service.
func NewPaymentMethodService(repo payments.MethodRepository, log logger.Logger) (crud.Service[payments.PaymentMethod, payments.MethodInput], error) {
	return newCRUDService[payments.PaymentMethod, payments.MethodInput](repo, "payment method", crudHooks[payments.PaymentMethod]{}, log), nil
}

// rechargeService implements payments.RechargeService
type rechargeService struct {
	repo    payments.RechargeRepository
	methods payments.MethodRepository
	logger  logger.Logger
}

// NewRechargeService creates a new instance of payments.RechargeService
func NewRechargeService(repo payments.RechargeRepository, methods payments.MethodRepository, log logger.Logger) (payments.RechargeService, error) {
	return &rechargeService{repo: repo, methods: methods, logger: log}, nil
}

// Create files a pending recharge request for the caller against an active
// payment method.
func (s *rechargeService) Create(ctx context.Context, actor users.Claims, input *payments.RechargeInput) (*payments.RechargeRequest, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}

	method, err := s.methods.GetByID(ctx, input.PaymentMethodID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Validationf("payment method %d does not exist", input.PaymentMethodID)
	}
	if err != nil {
		return nil, err
	}
	if !method.IsActive() {
		return nil, apperr.Validationf("payment method %s is not active", method.Name)
	}

	request := &payments.RechargeRequest{
		UserID:          actor.UserID,
		PaymentMethodID: method.ID,
		Amount:          input.Amount,
		SenderNumber:    input.SenderNumber,
		TransactionID:   input.TransactionID,
		Status:          payments.RechargePending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create recharge request: %w", err)
	}

	s.logger.Info("recharge requested", "id", request.ID, "user_id", actor.UserID, "amount", request.Amount)
	return request, nil
}

// GetByID returns a request visible to the caller.
func (s *rechargeService) GetByID(ctx context.Context, actor users.Claims, id uint) (*payments.RechargeRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(request.UserID) {
		return nil, fmt.Errorf("recharge request %d: %w", id, apperr.ErrForbidden)
	}
	return request, nil
}

// List restricts entrepreneurs to their own requests.
func (s *rechargeService) List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*payments.RechargeRequest, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	if !actor.IsAdmin() {
		query.Filter("user_id", actor.UserID)
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

// Review approves or rejects a pending request.
func (s *rechargeService) Review(ctx context.Context, id uint, input *payments.RechargeStatusInput) (*payments.RechargeRequest, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}
	if err := s.repo.Review(ctx, id, input.Status, input.Note); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteByID removes a pending request.
func (s *rechargeService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeletePending(ctx, id)
}

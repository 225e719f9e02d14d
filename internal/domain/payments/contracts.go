package payments

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// MethodRepository defines persistence for payment methods.
type MethodRepository interface {
	crud.Repository[PaymentMethod]
}

// RechargeRepository defines persistence for recharge requests.
type RechargeRepository interface {
	// Create returns apperr.ErrConflict if the transaction ID was already used.
	Create(ctx context.Context, request *RechargeRequest) error
	GetByID(ctx context.Context, id uint) (*RechargeRequest, error)
	List(ctx context.Context, query *crud.ListQuery) ([]*RechargeRequest, int64, error)
	// Review moves a pending request to approved or rejected. Approving
	// credits the owner's balance in the same transaction. It returns
	// apperr.ErrInvalidStatusTransition if the request is no longer pending.
	Review(ctx context.Context, id uint, to RechargeStatus, note *string) error
	// DeletePending deletes a pending request. It returns
	// apperr.ErrInvalidStatusTransition for reviewed requests.
	DeletePending(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[RechargeStatus]int64, error)
	SumApproved(ctx context.Context) (float64, error)
}

// RechargeService handles the recharge workflow.
type RechargeService interface {
	Create(ctx context.Context, actor users.Claims, input *RechargeInput) (*RechargeRequest, error)
	GetByID(ctx context.Context, actor users.Claims, id uint) (*RechargeRequest, error)
	List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*RechargeRequest, pagination.Meta, error)
	Review(ctx context.Context, id uint, input *RechargeStatusInput) (*RechargeRequest, error)
	DeleteByID(ctx context.Context, id uint) error
}

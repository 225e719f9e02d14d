package payments

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// RechargeStatus is the review state of a recharge request.
type RechargeStatus string

// Recharge statuses. Approved and rejected are final.
const (
	RechargePending  RechargeStatus = "pending"
	RechargeApproved RechargeStatus = "approved"
	RechargeRejected RechargeStatus = "rejected"
)

// RechargeRequest is an agent's claim to have sent Amount through a payment
// method. Approving it credits the agent's balance.
type RechargeRequest struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id" validate:"required"`
	PaymentMethodID uint           `json:"payment_method_id" validate:"required"`
	Amount          float64        `json:"amount" validate:"gt=0"`
	SenderNumber    string         `json:"sender_number" validate:"required,max=30"`
	TransactionID   string         `json:"transaction_id" validate:"required,max=64"`
	Status          RechargeStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Note            *string        `json:"note,omitempty" validate:"omitempty,max=500"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Validate checks field formats.
func (r RechargeRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// RechargeInput is the payload an agent submits.
type RechargeInput struct {
	PaymentMethodID uint    `json:"payment_method_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"gt=0,lte=1000000"`
	SenderNumber    string  `json:"sender_number" validate:"required,max=30"`
	TransactionID   string  `json:"transaction_id" validate:"required,max=64"`
}

// RechargeStatusInput is the payload an administrator submits to review a
// recharge request.
type RechargeStatusInput struct {
	Status RechargeStatus `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string        `json:"note" validate:"omitempty,max=500"`
}

// Package payments models the accounts agents pay into and the recharge
// requests that top up an agent's balance.
package payments

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// MethodStatus controls whether a payment method is offered to agents.
type MethodStatus string

// Payment method statuses.
const (
	MethodActive   MethodStatus = "active"
	MethodInactive MethodStatus = "inactive"
)

// AccountType describes the receiving account of a payment method.
type AccountType string

// Account types.
const (
	AccountPersonal AccountType = "personal"
	AccountAgent    AccountType = "agent"
	AccountMerchant AccountType = "merchant"
	AccountBank     AccountType = "bank"
)

// PaymentMethod is an account (bKash, Nagad, bank, ...) agents send money to.
type PaymentMethod struct {
	ID            uint         `json:"id"`
	Name          string       `json:"name" validate:"required,max=100"`
	AccountNumber string       `json:"account_number" validate:"required,max=50"`
	AccountType   AccountType  `json:"account_type" validate:"required,oneof=personal agent merchant bank"`
	Logo          *string      `json:"logo,omitempty" validate:"omitempty,max=255"`
	Instructions  *string      `json:"instructions,omitempty"`
	Status        MethodStatus `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Validate checks field formats.
func (m PaymentMethod) Validate() error {
	if err := validators.Struct(m); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// IsActive reports whether agents may recharge through this method.
func (m PaymentMethod) IsActive() bool {
	return m.Status == MethodActive
}

// MethodInput creates or partially updates a payment method.
type MethodInput struct {
	Name          *string       `json:"name"`
	AccountNumber *string       `json:"account_number"`
	AccountType   *AccountType  `json:"account_type"`
	Logo          *string       `json:"logo"`
	Instructions  *string       `json:"instructions"`
	Status        *MethodStatus `json:"status"`
}

// Apply copies the set fields onto m. New methods default to active.
func (in MethodInput) Apply(m *PaymentMethod) {
	if m.Status == "" {
		m.Status = MethodActive
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.AccountNumber != nil {
		m.AccountNumber = *in.AccountNumber
	}
	if in.AccountType != nil {
		m.AccountType = *in.AccountType
	}
	if in.Logo != nil {
		m.Logo = in.Logo
	}
	if in.Instructions != nil {
		m.Instructions = in.Instructions
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
}

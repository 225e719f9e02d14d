package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
)

// PaymentMethodModel is the GORM database model for payment methods
type PaymentMethodModel struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"not null;type:varchar(100)"`
	AccountNumber string  `gorm:"not null;type:varchar(50)"`
	AccountType   string  `gorm:"not null;type:varchar(20)"`
	Logo          *string `gorm:"type:varchar(255)"`
	Instructions  *string `gorm:"type:text"`
	Status        string  `gorm:"not null;index;type:varchar(20)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// PrimaryKey returns the row id
func (m *PaymentMethodModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *PaymentMethodModel) ToDomain() *payments.PaymentMethod {
	return &payments.PaymentMethod{
		ID:            m.ID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		AccountType:   payments.AccountType(m.AccountType),
		Logo:          m.Logo,
		Instructions:  m.Instructions,
		Status:        payments.MethodStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentMethodModel) FromDomain(p *payments.PaymentMethod) {
	m.ID = p.ID
	m.Name = p.Name
	m.AccountNumber = p.AccountNumber
	m.AccountType = string(p.AccountType)
	m.Logo = p.Logo
	m.Instructions = p.Instructions
	m.Status = string(p.Status)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// RechargeRequestModel is the GORM database model for recharge requests
type RechargeRequestModel struct {
	ID              uint    `gorm:"primaryKey"`
	UserID          uint    `gorm:"not null;index"`
	PaymentMethodID uint    `gorm:"not null;index"`
	Amount          float64 `gorm:"not null;type:numeric(12,2)"`
	SenderNumber    string  `gorm:"not null;type:varchar(30)"`
	TransactionID   string  `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Status          string  `gorm:"not null;index;type:varchar(20)"`
	Note            *string `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (RechargeRequestModel) TableName() string {
	return "recharge_requests"
}

// PrimaryKey returns the row id
func (m *RechargeRequestModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *RechargeRequestModel) ToDomain() *payments.RechargeRequest {
	return &payments.RechargeRequest{
		ID:              m.ID,
		UserID:          m.UserID,
		PaymentMethodID: m.PaymentMethodID,
		Amount:          m.Amount,
		SenderNumber:    m.SenderNumber,
		TransactionID:   m.TransactionID,
		Status:          payments.RechargeStatus(m.Status),
		Note:            m.Note,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RechargeRequestModel) FromDomain(r *payments.RechargeRequest) {
	m.ID = r.ID
	m.UserID = r.UserID
	m.PaymentMethodID = r.PaymentMethodID
	m.Amount = r.Amount
	m.SenderNumber = r.SenderNumber
	m.TransactionID = r.TransactionID
	m.Status = string(r.Status)
	m.Note = r.Note
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

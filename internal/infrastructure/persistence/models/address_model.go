package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
)

// AddressModel is the GORM database model for the administrative hierarchy
type AddressModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;type:varchar(100)"`
	BnName    *string `gorm:"type:varchar(100)"`
	Type      string  `gorm:"not null;index;type:varchar(20)"`
	ParentID  *uint   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// PrimaryKey returns the row id
func (m *AddressModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *AddressModel) ToDomain() *addresses.Address {
	return &addresses.Address{
		ID:        m.ID,
		Name:      m.Name,
		BnName:    m.BnName,
		Type:      addresses.Type(m.Type),
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AddressModel) FromDomain(a *addresses.Address) {
	m.ID = a.ID
	m.Name = a.Name
	m.BnName = a.BnName
	m.Type = string(a.Type)
	m.ParentID = a.ParentID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

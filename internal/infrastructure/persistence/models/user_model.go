package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null;type:varchar(100)"`
	Phone        string  `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Email        *string `gorm:"uniqueIndex;type:varchar(150)"`
	PasswordHash string  `gorm:"not null;type:varchar(255)"`
	Role         string  `gorm:"not null;index;type:varchar(20)"`
	Status       string  `gorm:"not null;index;type:varchar(20)"`
	Balance      float64 `gorm:"not null;default:0;type:numeric(12,2)"`
	NID          *string `gorm:"column:nid;type:varchar(20)"`
	Image        *string `gorm:"type:varchar(255)"`
	DivisionID   *uint   `gorm:"index"`
	DistrictID   *uint   `gorm:"index"`
	UpazilaID    *uint   `gorm:"index"`
	UnionID      *uint   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// PrimaryKey returns the row id
func (m *UserModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         users.Role(m.Role),
		Status:       users.Status(m.Status),
		Balance:      m.Balance,
		NID:          m.NID,
		Image:        m.Image,
		DivisionID:   m.DivisionID,
		DistrictID:   m.DistrictID,
		UpazilaID:    m.UpazilaID,
		UnionID:      m.UnionID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Phone = u.Phone
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.Status = string(u.Status)
	m.Balance = u.Balance
	m.NID = u.NID
	m.Image = u.Image
	m.DivisionID = u.DivisionID
	m.DistrictID = u.DistrictID
	m.UpazilaID = u.UpazilaID
	m.UnionID = u.UnionID
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

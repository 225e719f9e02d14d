package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
)

// PublicServiceModel is the GORM database model for public services
type PublicServiceModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"not null;type:varchar(150)"`
	Description string  `gorm:"not null;type:text"`
	Price       float64 `gorm:"not null;default:0;type:numeric(12,2)"`
	Icon        *string `gorm:"type:varchar(255)"`
	FormSchema  *string `gorm:"type:text"`
	Status      string  `gorm:"not null;index;type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PublicServiceModel) TableName() string {
	return "public_services"
}

// PrimaryKey returns the row id
func (m *PublicServiceModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *PublicServiceModel) ToDomain() *publicservices.PublicService {
	return &publicservices.PublicService{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Icon:        m.Icon,
		FormSchema:  m.FormSchema,
		Status:      publicservices.Status(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PublicServiceModel) FromDomain(s *publicservices.PublicService) {
	m.ID = s.ID
	m.Title = s.Title
	m.Description = s.Description
	m.Price = s.Price
	m.Icon = s.Icon
	m.FormSchema = s.FormSchema
	m.Status = string(s.Status)
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

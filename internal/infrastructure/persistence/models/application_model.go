package models

import (
	"encoding/json"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
)

// ApplicationModel is the GORM database model for applications. Data holds
// the submitted form as JSON text.
type ApplicationModel struct {
	ID             uint    `gorm:"primaryKey"`
	TrackingNo     string  `gorm:"not null;uniqueIndex;type:varchar(32)"`
	UserID         uint    `gorm:"not null;index"`
	ServiceID      uint    `gorm:"not null;index"`
	ApplicantName  string  `gorm:"not null;type:varchar(150)"`
	ApplicantPhone *string `gorm:"type:varchar(20)"`
	Data           string  `gorm:"type:text"`
	Charge         float64 `gorm:"not null;default:0;type:numeric(12,2)"`
	Status         string  `gorm:"not null;index;type:varchar(20)"`
	Note           *string `gorm:"type:varchar(500)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// PrimaryKey returns the row id
func (m *ApplicationModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ApplicationModel) ToDomain() *applications.Application {
	var data json.RawMessage
	if m.Data != "" {
		data = json.RawMessage(m.Data)
	}
	return &applications.Application{
		ID:             m.ID,
		TrackingNo:     m.TrackingNo,
		UserID:         m.UserID,
		ServiceID:      m.ServiceID,
		ApplicantName:  m.ApplicantName,
		ApplicantPhone: m.ApplicantPhone,
		Data:           data,
		Charge:         m.Charge,
		Status:         applications.Status(m.Status),
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ApplicationModel) FromDomain(a *applications.Application) {
	m.ID = a.ID
	m.TrackingNo = a.TrackingNo
	m.UserID = a.UserID
	m.ServiceID = a.ServiceID
	m.ApplicantName = a.ApplicantName
	m.ApplicantPhone = a.ApplicantPhone
	m.Data = string(a.Data)
	m.Charge = a.Charge
	m.Status = string(a.Status)
	m.Note = a.Note
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

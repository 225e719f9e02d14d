package models

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
)

// MediaModel is the GORM database model for uploaded images
type MediaModel struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"not null;type:varchar(255)"`
	FileName   string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	URL        string `gorm:"not null;type:varchar(500)"`
	MimeType   string `gorm:"not null;type:varchar(50)"`
	Size       int64  `gorm:"not null"`
	Width      int    `gorm:"not null"`
	Height     int    `gorm:"not null"`
	UploadedBy uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (MediaModel) TableName() string {
	return "media"
}

// PrimaryKey returns the row id
func (m *MediaModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *MediaModel) ToDomain() *media.Media {
	return &media.Media{
		ID:         m.ID,
		Title:      m.Title,
		FileName:   m.FileName,
		URL:        m.URL,
		MimeType:   m.MimeType,
		Size:       m.Size,
		Width:      m.Width,
		Height:     m.Height,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MediaModel) FromDomain(md *media.Media) {
	m.ID = md.ID
	m.Title = md.Title
	m.FileName = md.FileName
	m.URL = md.URL
	m.MimeType = md.MimeType
	m.Size = md.Size
	m.Width = md.Width
	m.Height = md.Height
	m.UploadedBy = md.UploadedBy
	m.CreatedAt = md.CreatedAt
	m.UpdatedAt = md.UpdatedAt
}

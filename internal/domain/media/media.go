// Package media models images uploaded through the admin panel. Every upload
// is re-encoded to WebP and served from the public uploads directory.
package media

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// WebPMimeType is the content type of every stored file.
const WebPMimeType = "image/webp"

// Media is the metadata of a stored image.
type Media struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title" validate:"required,max=255"`
	FileName   string    `json:"file_name" validate:"required,max=255"`
	URL        string    `json:"url" validate:"required,max=500"`
	MimeType   string    `json:"mime_type" validate:"required"`
	Size       int64     `json:"size" validate:"gt=0"`
	Width      int       `json:"width" validate:"gt=0"`
	Height     int       `json:"height" validate:"gt=0"`
	UploadedBy uint      `json:"uploaded_by" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks field formats.
func (m Media) Validate() error {
	if err := validators.Struct(m); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// Image is an encoded image ready to be stored.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

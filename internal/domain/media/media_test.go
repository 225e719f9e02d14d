//go:build unit
// +build unit

package media

import (
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestMedia_Validate(t *testing.T) {
	m := Media{
		Title:      "banner.png",
		FileName:   "0f8fad5b-d9cb-469f-a165-70867728950e.webp",
		URL:        "/uploads/0f8fad5b-d9cb-469f-a165-70867728950e.webp",
		MimeType:   WebPMimeType,
		Size:       2048,
		Width:      640,
		Height:     480,
		UploadedBy: 1,
	}
	assert.NoError(t, m.Validate())

	m.Width = 0
	assert.ErrorIs(t, m.Validate(), apperr.ErrValidation)
}

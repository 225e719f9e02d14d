//go:build unit
// +build unit

package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"net/http"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/testutil"

	"github.com/gen2brain/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() *WebPProcessor {
	return NewWebPProcessor(&config.UploadSettings{MaxSizeMB: 1, MaxWidth: 64, Quality: 75}).(*WebPProcessor)
}

func TestWebPProcessor_ConvertsSupportedFormats(t *testing.T) {
	p := newTestProcessor()
	inputs := map[string][]byte{
		"png":  testutil.PNGBytes(t, 32, 16),
		"jpeg": testutil.JPEGBytes(t, 32, 16),
		"gif":  testutil.GIFBytes(t, 32, 16),
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			img, err := p.ToWebP(bytes.NewReader(raw))
			require.NoError(t, err)
			assert.Equal(t, 32, img.Width)
			assert.Equal(t, 16, img.Height)
			assert.Equal(t, "image/webp", http.DetectContentType(img.Data))
		})
	}
}

func TestWebPProcessor_DownsizesWideImages(t *testing.T) {
	p := newTestProcessor()

	img, err := p.ToWebP(bytes.NewReader(testutil.PNGBytes(t, 256, 128)))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Width)
	assert.Equal(t, 32, img.Height)

	decoded, err := webp.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())

	again, err := p.ToWebP(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, 64, again.Width)
}

func TestWebPProcessor_RejectsInvalidInput(t *testing.T) {
	p := newTestProcessor()

	_, err := p.ToWebP(bytes.NewReader([]byte("plain text, not an image")))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = p.ToWebP(bytes.NewReader(nil))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = p.ToWebP(bytes.NewReader(make([]byte, 2<<20)))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

// pngHeaderOnly returns a PNG that declares a width x height RGBA canvas but
// carries no pixel data.
func pngHeaderOnly(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	chunk := func(kind string, data []byte) {
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		body := append([]byte(kind), data...)
		buf.Write(body)
		_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(body))
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	chunk("IHDR", ihdr)
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestWebPProcessor_RejectsOversizedDimensions(t *testing.T) {
	p := newTestProcessor()

	raw := pngHeaderOnly(12000, 12000)
	require.Less(t, len(raw), 100)
	_, err := p.ToWebP(bytes.NewReader(raw))
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "12000x12000")

	_, err = p.ToWebP(bytes.NewReader(pngHeaderOnly(65535, 65535)))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	strict := NewWebPProcessor(&config.UploadSettings{MaxSizeMB: 1, MaxPixels: 100, Quality: 75})
	_, err = strict.ToWebP(bytes.NewReader(testutil.PNGBytes(t, 32, 16)))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	img, err := strict.ToWebP(bytes.NewReader(testutil.PNGBytes(t, 10, 10)))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Width)
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Same(t, src, Fit(src, 0))
	assert.Same(t, src, Fit(src, 200))
	assert.Equal(t, image.Rect(0, 0, 10, 5), Fit(src, 10).Bounds())
}

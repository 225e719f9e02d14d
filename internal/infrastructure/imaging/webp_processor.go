// Package imaging converts uploaded images to WebP.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"

	"github.com/gen2brain/webp"
	"golang.org/x/image/draw"
)

// DefaultMaxPixels bounds width*height of an upload when no limit is set.
const DefaultMaxPixels = 40_000_000

type format struct {
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

var formats = map[string]format{
	"image/jpeg": {jpeg.Decode, jpeg.DecodeConfig},
	"image/png":  {png.Decode, png.DecodeConfig},
	"image/gif":  {gif.Decode, gif.DecodeConfig},
	"image/webp": {webp.Decode, webp.DecodeConfig},
}

// WebPProcessor decodes jpeg, png, gif and webp input, downsizes it to
// MaxWidth and encodes it as lossy WebP. Images whose header declares more
// than MaxPixels pixels are rejected before any pixel buffer is allocated.
type WebPProcessor struct {
	MaxBytes  int64
	MaxPixels int64
	MaxWidth  int
	Quality   int
}

// NewWebPProcessor creates a processor from the upload settings.
func NewWebPProcessor(settings *config.UploadSettings) media.ImageProcessor {
	return &WebPProcessor{
		MaxBytes:  int64(settings.MaxSizeMB) << 20,
		MaxPixels: settings.MaxPixels,
		MaxWidth:  settings.MaxWidth,
		Quality:   settings.Quality,
	}
}

// ToWebP implements media.ImageProcessor.
func (p *WebPProcessor) ToWebP(r io.Reader) (*media.Image, error) {
	raw, err := p.read(r)
	if err != nil {
		return nil, err
	}

	contentType := http.DetectContentType(raw)
	f, ok := formats[contentType]
	if !ok {
		return nil, apperr.Validationf("unsupported image type %s", contentType)
	}
	cfg, err := f.decodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, apperr.Validationf("cannot decode %s image: %v", contentType, err)
	}
	if err := p.checkDimensions(cfg); err != nil {
		return nil, err
	}
	src, err := f.decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperr.Validationf("cannot decode %s image: %v", contentType, err)
	}

	img := Fit(src, p.MaxWidth)
	var out bytes.Buffer
	if err := webp.Encode(&out, img, webp.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	bounds := img.Bounds()
	return &media.Image{
		Data:   out.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func (p *WebPProcessor) checkDimensions(cfg image.Config) error {
	limit := p.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return apperr.Validationf("image has no pixels")
	}
	if int64(cfg.Width)*int64(cfg.Height) > limit {
		return apperr.Validationf("image %dx%d exceeds %d pixels", cfg.Width, cfg.Height, limit)
	}
	return nil
}

func (p *WebPProcessor) read(r io.Reader) ([]byte, error) {
	if p.MaxBytes <= 0 {
		return io.ReadAll(r)
	}
	raw, err := io.ReadAll(io.LimitReader(r, p.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(raw)) > p.MaxBytes {
		return nil, apperr.Validationf("file exceeds %d MB", p.MaxBytes>>20)
	}
	if len(raw) == 0 {
		return nil, apperr.Validationf("file is empty")
	}
	return raw, nil
}

// Fit scales src down to maxWidth keeping its aspect ratio. Images already
// narrow enough, or a maxWidth of zero, are returned unchanged.
func Fit(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	height := b.Dy() * maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

package media

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// Repository defines persistence for media metadata.
type Repository interface {
	crud.Repository[Media]
}

// Connector stores encoded files. The local implementation writes into the
// directory served at the public uploads path.
type Connector interface {
	// Save writes data under fileName and returns its public URL.
	Save(ctx context.Context, fileName string, data []byte) (string, error)
	// Delete removes fileName. A missing file is not an error.
	Delete(ctx context.Context, fileName string) error
}

// ImageProcessor converts uploaded images to WebP.
type ImageProcessor interface {
	// ToWebP decodes a jpeg, png, gif or webp image and re-encodes it.
	ToWebP(r io.Reader) (*Image, error)
}

// Service uploads and manages media.
type Service interface {
	// Upload converts and stores every file of the "files" form field.
	Upload(ctx context.Context, form *multipart.Form, uploadedBy uint) ([]*Media, error)
	GetByID(ctx context.Context, id uint) (*Media, error)
	List(ctx context.Context, query *crud.ListQuery) ([]*Media, pagination.Meta, error)
	// DeleteByID removes the metadata and then the file.
	DeleteByID(ctx context.Context, id uint) error
}

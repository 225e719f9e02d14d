package content

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// CategoryRepository defines persistence for blog categories.
type CategoryRepository interface {
	crud.Repository[BlogCategory]
	// SlugExists reports whether another category (not excludeID) uses slug.
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

// PostRepository defines persistence for blog posts.
type PostRepository interface {
	crud.Repository[BlogPost]
	// GetBySlug returns apperr.ErrNotFound when no post has the slug.
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// SlugExists reports whether another post (not excludeID) uses slug.
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	// CountByCategory returns how many posts belong to a category.
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// CareerRepository defines persistence for careers.
type CareerRepository interface {
	crud.Repository[Career]
}

// CenterRepository defines persistence for centers.
type CenterRepository interface {
	crud.Repository[Center]
}

// TeamMemberRepository defines persistence for team members.
type TeamMemberRepository interface {
	crud.Repository[TeamMember]
}

// ContactRepository defines persistence for contact messages.
type ContactRepository interface {
	crud.Repository[ContactForm]
}

// PostService extends the CRUD contract with public lookups.
type PostService interface {
	crud.Service[BlogPost, PostInput]
	// CreateAuthored creates a post written by authorID.
	CreateAuthored(ctx context.Context, authorID uint, input PostInput) (*BlogPost, error)
	// GetBySlug returns a post by slug; unpublished posts are only visible
	// when includeDrafts is set.
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*BlogPost, error)
}

// ContactService receives and manages contact messages.
type ContactService interface {
	Submit(ctx context.Context, input *ContactInput) (*ContactForm, error)
	// Open returns a message and marks it read.
	Open(ctx context.Context, id uint) (*ContactForm, error)
	List(ctx context.Context, query *crud.ListQuery) ([]*ContactForm, pagination.Meta, error)
	DeleteByID(ctx context.Context, id uint) error
}

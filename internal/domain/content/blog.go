package content

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// PostStatus controls public visibility of a blog post.
type PostStatus string

// Post statuses.
const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// BlogCategory groups blog posts.
type BlogCategory struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Slug        string    `json:"slug" validate:"required,slug,max=120"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks field formats.
func (c BlogCategory) Validate() error {
	if err := validators.Struct(c); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// CategoryInput creates or partially updates a blog category. An empty slug
// is derived from the name.
type CategoryInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// Apply copies the set fields onto c.
func (in CategoryInput) Apply(c *BlogCategory) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Slug != nil {
		c.Slug = *in.Slug
	}
	if in.Description != nil {
		c.Description = in.Description
	}
}

// BlogPost is an article on the public blog.
type BlogPost struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title" validate:"required,max=200"`
	Slug        string     `json:"slug" validate:"required,slug,max=220"`
	Excerpt     *string    `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content     string     `json:"content" validate:"required"`
	Thumbnail   *string    `json:"thumbnail,omitempty" validate:"omitempty,max=255"`
	CategoryID  uint       `json:"category_id" validate:"required"`
	AuthorID    uint       `json:"author_id" validate:"required"`
	Status      PostStatus `json:"status" validate:"required,oneof=draft published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks field formats.
func (p BlogPost) Validate() error {
	if err := validators.Struct(p); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// IsPublished reports whether the post is publicly visible.
func (p BlogPost) IsPublished() bool {
	return p.Status == PostPublished
}

// PostInput creates or partially updates a blog post. An empty slug is
// derived from the title. AuthorID is set by the service from the caller.
type PostInput struct {
	Title      *string     `json:"title"`
	Slug       *string     `json:"slug"`
	Excerpt    *string     `json:"excerpt"`
	Content    *string     `json:"content"`
	Thumbnail  *string     `json:"thumbnail"`
	CategoryID *uint       `json:"category_id"`
	Status     *PostStatus `json:"status"`
}

// Apply copies the set fields onto p. New posts default to draft.
func (in PostInput) Apply(p *BlogPost) {
	if p.Status == "" {
		p.Status = PostDraft
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		p.Excerpt = in.Excerpt
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Thumbnail != nil {
		p.Thumbnail = in.Thumbnail
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
}

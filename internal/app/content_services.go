package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/gosimple/slug"
)

const maxSlugAttempts = 50

// assignSlug normalizes an explicit slug or derives a unique one from source.
// An explicit slug already in use is a conflict; a derived one gets a numeric
// suffix.
func assignSlug(ctx context.Context, current, source string, id uint, exists func(context.Context, string, uint) (bool, error)) (string, error) {
	explicit := current != ""
	base := slug.Make(current)
	if !explicit {
		base = slug.Make(source)
	}
	if base == "" {
		return "", apperr.Validationf("cannot derive a slug from %q", source)
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		taken, err := exists(ctx, candidate, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if explicit {
			return "", fmt.Errorf("slug %s: %w", candidate, apperr.ErrConflict)
		}
	}
	return "", fmt.Errorf("slug %s: %w", base, apperr.ErrConflict)
}

// NewBlogCategoryService creates the blog category service.
func NewBlogCategoryService(repo content.CategoryRepository, posts content.PostRepository, log logger.Logger) (crud.Service[content.BlogCategory, content.CategoryInput], error) {
	hooks := crudHooks[content.BlogCategory]{
		beforeSave: func(ctx context.Context, c *content.BlogCategory, _ bool) error {
			s, err := assignSlug(ctx, c.Slug, c.Name, c.ID, repo.SlugExists)
			if err != nil {
				return err
			}
			c.Slug = s
			return nil
		},
		beforeDelete: func(ctx context.Context, id uint) error {
			n, err := posts.CountByCategory(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("blog category %d has %d posts: %w", id, n, apperr.ErrConflict)
			}
			return nil
		},
	}
	return newCRUDService[content.BlogCategory, content.CategoryInput](repo, "blog category", hooks, log), nil
}

// postService implements content.PostService
type postService struct {
	*crudService[content.BlogPost, content.PostInput]
	posts content.PostRepository
	now   func() time.Time
}

// NewBlogPostService creates the blog post service. Slugs derive from the
// title, the category must exist and publishing stamps published_at.
func NewBlogPostService(posts content.PostRepository, categories content.CategoryRepository, log logger.Logger) (content.PostService, error) {
	s := &postService{posts: posts, now: time.Now}
	hooks := crudHooks[content.BlogPost]{
		beforeSave: func(ctx context.Context, p *content.BlogPost, _ bool) error {
			if p.CategoryID != 0 {
				if _, err := categories.GetByID(ctx, p.CategoryID); err != nil {
					if errors.Is(err, apperr.ErrNotFound) {
						return apperr.Validationf("blog category %d does not exist", p.CategoryID)
					}
					return err
				}
			}
			slugged, err := assignSlug(ctx, p.Slug, p.Title, p.ID, posts.SlugExists)
			if err != nil {
				return err
			}
			p.Slug = slugged

			switch {
			case p.IsPublished() && p.PublishedAt == nil:
				now := s.now()
				p.PublishedAt = &now
			case !p.IsPublished():
				p.PublishedAt = nil
			}
			return nil
		},
	}
	s.crudService = newCRUDService[content.BlogPost, content.PostInput](posts, "blog post", hooks, log)
	return s, nil
}

// Create without an author fails validation; use CreateAuthored.
func (s *postService) Create(ctx context.Context, input content.PostInput) (*content.BlogPost, error) {
	return s.CreateAuthored(ctx, 0, input)
}

func (s *postService) CreateAuthored(ctx context.Context, authorID uint, input content.PostInput) (*content.BlogPost, error) {
	post := &content.BlogPost{AuthorID: authorID}
	input.Apply(post)

	if err := s.hooks.beforeSave(ctx, post, true); err != nil {
		return nil, err
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*content.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() && !includeDrafts {
		return nil, fmt.Errorf("blog post with slug %s %w", slug, apperr.ErrNotFound)
	}
	return post, nil
}

// NewCareerService creates the career service.
func NewCareerService(repo content.CareerRepository, log logger.Logger) (crud.Service[content.Career, content.CareerInput], error) {
	return newCRUDService[content.Career, content.CareerInput](repo, "career", crudHooks[content.Career]{}, log), nil
}

// NewCenterService creates the center service.
func NewCenterService(repo content.CenterRepository, log logger.Logger) (crud.Service[content.Center, content.CenterInput], error) {
	return newCRUDService[content.Center, content.CenterInput](repo, "center", crudHooks[content.Center]{}, log), nil
}

// NewTeamMemberService creates the team member service.
func NewTeamMemberService(repo content.TeamMemberRepository, log logger.Logger) (crud.Service[content.TeamMember, content.TeamMemberInput], error) {
	return newCRUDService[content.TeamMember, content.TeamMemberInput](repo, "team member", crudHooks[content.TeamMember]{}, log), nil
}

// contactService implements content.ContactService
type contactService struct {
	repo   content.ContactRepository
	logger logger.Logger
}

// NewContactService creates a new instance of content.ContactService
func NewContactService(repo content.ContactRepository, log logger.Logger) (content.ContactService, error) {
	return &contactService{repo: repo, logger: log}, nil
}

func (s *contactService) Submit(ctx context.Context, input *content.ContactInput) (*content.ContactForm, error) {
	form := input.ToContactForm()
	if err := s.repo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return form, nil
}

func (s *contactService) Open(ctx context.Context, id uint) (*content.ContactForm, error) {
	form, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form.Status == content.ContactRead {
		return form, nil
	}

	form.Status = content.ContactRead
	if err := s.repo.Update(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to mark contact message read: %w", err)
	}
	return form, nil
}

func (s *contactService) List(ctx context.Context, query *crud.ListQuery) ([]*content.ContactForm, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

func (s *contactService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

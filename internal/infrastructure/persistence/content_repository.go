package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence/models"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	*gormRepository[content.BlogCategory, models.BlogCategoryModel, *models.BlogCategoryModel]
}

// NewGormCategoryRepository creates a GORM-based content.CategoryRepository
func NewGormCategoryRepository(db *gorm.DB, log logger.Logger) (content.CategoryRepository, error) {
	return &gormCategoryRepository{
		gormRepository: newGormRepository[content.BlogCategory, models.BlogCategoryModel](db, log, "blog category", listSpec{
			searchable: []string{"name", "slug"},
			sortable:   []string{"name"},
		}),
	}, nil
}

func (r *gormCategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return r.exists(ctx, "slug = ? AND id <> ?", slug, excludeID)
}

type gormPostRepository struct {
	*gormRepository[content.BlogPost, models.BlogPostModel, *models.BlogPostModel]
}

// NewGormPostRepository creates a GORM-based content.PostRepository
func NewGormPostRepository(db *gorm.DB, log logger.Logger) (content.PostRepository, error) {
	return &gormPostRepository{
		gormRepository: newGormRepository[content.BlogPost, models.BlogPostModel](db, log, "blog post", listSpec{
			searchable: []string{"title", "excerpt", "slug"},
			sortable:   []string{"title", "published_at", "updated_at"},
			filterable: []string{"status", "category_id", "author_id"},
		}),
	}, nil
}

func (r *gormPostRepository) GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var m models.BlogPostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post with slug %s %w", slug, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *gormPostRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return r.exists(ctx, "slug = ? AND id <> ?", slug, excludeID)
}

func (r *gormPostRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BlogPostModel{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

// NewGormCareerRepository creates a GORM-based content.CareerRepository
func NewGormCareerRepository(db *gorm.DB, log logger.Logger) (content.CareerRepository, error) {
	return newGormRepository[content.Career, models.CareerModel](db, log, "career", listSpec{
		searchable: []string{"title", "location"},
		sortable:   []string{"title", "deadline"},
		filterable: []string{"status", "employment_type"},
	}), nil
}

// NewGormCenterRepository creates a GORM-based content.CenterRepository
func NewGormCenterRepository(db *gorm.DB, log logger.Logger) (content.CenterRepository, error) {
	return newGormRepository[content.Center, models.CenterModel](db, log, "center", listSpec{
		searchable: []string{"name", "address"},
		sortable:   []string{"name"},
		filterable: []string{"division_id", "district_id"},
	}), nil
}

// NewGormTeamMemberRepository creates a GORM-based content.TeamMemberRepository
func NewGormTeamMemberRepository(db *gorm.DB, log logger.Logger) (content.TeamMemberRepository, error) {
	return newGormRepository[content.TeamMember, models.TeamMemberModel](db, log, "team member", listSpec{
		searchable: []string{"name", "designation"},
		sortable:   []string{"name", "position"},
	}), nil
}

// NewGormContactRepository creates a GORM-based content.ContactRepository
func NewGormContactRepository(db *gorm.DB, log logger.Logger) (content.ContactRepository, error) {
	return newGormRepository[content.ContactForm, models.ContactFormModel](db, log, "contact message", listSpec{
		searchable: []string{"name", "email", "subject"},
		sortable:   []string{"name", "status"},
		filterable: []string{"status"},
	}), nil
}

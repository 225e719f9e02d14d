// Package crud declares the generic contracts shared by the plain
// create/read/update/delete resources of the admin backend.
package crud

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// Entity is a domain record that can check its own invariants.
type Entity interface {
	Validate() error
}

// Input is a partial update payload. Apply copies every non-nil field onto
// the target; applying to a zero value builds a new record.
type Input[T any] interface {
	Apply(target *T)
}

// ListQuery combines paging/search options with exact-match filters.
// Repositories ignore filter keys that are not in their allowlist and nil
// filter values.
type ListQuery struct {
	pagination.Options
	Filters map[string]any
}

// NewListQuery returns a query with normalized options and an empty filter set.
func NewListQuery(opts pagination.Options) *ListQuery {
	opts.Normalize()
	return &ListQuery{Options: opts, Filters: map[string]any{}}
}

// Filter sets an exact-match filter and returns the query for chaining.
func (q *ListQuery) Filter(column string, value any) *ListQuery {
	if q.Filters == nil {
		q.Filters = map[string]any{}
	}
	q.Filters[column] = value
	return q
}

// Repository persists a single entity type.
type Repository[T any] interface {
	// Create inserts entity and fills generated fields (ID, timestamps).
	Create(ctx context.Context, entity *T) error
	// GetByID returns apperr.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uint) (*T, error)
	// List returns one page of matching rows and the total match count.
	List(ctx context.Context, query *ListQuery) ([]*T, int64, error)
	// Update writes every column of entity.
	Update(ctx context.Context, entity *T) error
	// DeleteByID returns apperr.ErrNotFound when no row matches.
	DeleteByID(ctx context.Context, id uint) error
}

// Service is the application-level contract behind a CRUD resource.
type Service[T any, I Input[T]] interface {
	Create(ctx context.Context, input I) (*T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, query *ListQuery) ([]*T, pagination.Meta, error)
	Update(ctx context.Context, id uint, input I) (*T, error)
	DeleteByID(ctx context.Context, id uint) error
}

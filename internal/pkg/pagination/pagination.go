// Package pagination parses list query parameters and describes the page
// returned with every list response.
package pagination

import (
	"strconv"
	"strings"
)

// Defaults and bounds applied by Normalize.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortBy    = "created_at"
	DefaultSortOrder = SortDesc
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Options controls paging, ordering and free-text search of a list query.
type Options struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	SearchTerm string
}

// Meta describes the returned page.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Getter is satisfied by url.Values and by gin's query accessor adapter.
type Getter interface {
	Get(key string) string
}

// FromQuery reads page, limit, sortBy, sortOrder and searchTerm, then
// normalizes the result. Unparseable numbers fall back to defaults.
func FromQuery(q Getter) Options {
	opts := Options{
		Page:       atoi(q.Get("page")),
		Limit:      atoi(q.Get("limit")),
		SortBy:     strings.TrimSpace(q.Get("sortBy")),
		SortOrder:  strings.ToLower(strings.TrimSpace(q.Get("sortOrder"))),
		SearchTerm: strings.TrimSpace(q.Get("searchTerm")),
	}
	opts.Normalize()
	return opts
}

// Normalize applies defaults and clamps out-of-range values.
func (o *Options) Normalize() {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.SortBy == "" {
		o.SortBy = DefaultSortBy
	}
	if o.SortOrder != SortAsc && o.SortOrder != SortDesc {
		o.SortOrder = DefaultSortOrder
	}
}

// Offset is the number of rows skipped before the page starts.
func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

// NewMeta builds the page description for total matching rows.
func NewMeta(o Options, total int64) Meta {
	pages := 0
	if o.Limit > 0 {
		pages = int((total + int64(o.Limit) - 1) / int64(o.Limit))
	}
	return Meta{Page: o.Page, Limit: o.Limit, Total: total, TotalPages: pages}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

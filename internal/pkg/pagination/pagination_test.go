//go:build unit
// +build unit

package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Options
	}{
		{
			name:  "defaults",
			query: "",
			want:  Options{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			name:  "explicit values",
			query: "page=3&limit=25&sortBy=name&sortOrder=ASC&searchTerm=%20rahim%20",
			want:  Options{Page: 3, Limit: 25, SortBy: "name", SortOrder: "asc", SearchTerm: "rahim"},
		},
		{
			name:  "limit clamped",
			query: "limit=1000",
			want:  Options{Page: 1, Limit: 100, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			name:  "garbage numbers and order",
			query: "page=-2&limit=abc&sortOrder=sideways",
			want:  Options{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FromQuery(values))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Options{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Options{Page: 5, Limit: 10}.Offset())
}

func TestNewMeta(t *testing.T) {
	opts := Options{Page: 2, Limit: 10}

	assert.Equal(t, Meta{Page: 2, Limit: 10, Total: 0, TotalPages: 0}, NewMeta(opts, 0))
	assert.Equal(t, Meta{Page: 2, Limit: 10, Total: 10, TotalPages: 1}, NewMeta(opts, 10))
	assert.Equal(t, Meta{Page: 2, Limit: 10, Total: 21, TotalPages: 3}, NewMeta(opts, 21))
}

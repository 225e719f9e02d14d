//go:build unit
// +build unit

package crud

import (
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNewListQuery_NormalizesAndFilters(t *testing.T) {
	q := NewListQuery(pagination.Options{Limit: 500}).
		Filter("status", "active").
		Filter("role", nil)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, pagination.MaxLimit, q.Limit)
	assert.Equal(t, "active", q.Filters["status"])
	assert.Contains(t, q.Filters, "role")
}

func TestFilter_OnZeroQuery(t *testing.T) {
	var q ListQuery
	q.Filter("type", "district")
	assert.Equal(t, "district", q.Filters["type"])
}

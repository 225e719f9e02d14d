//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// takenSlugs reports the listed slugs as already in use.
func takenSlugs(slugs ...string) func(context.Context, string, uint) (bool, error) {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(_ context.Context, s string, _ uint) (bool, error) {
		return set[s], nil
	}
}

func TestAssignSlug(t *testing.T) {
	ctx := context.Background()

	got, err := assignSlug(ctx, "", "Birth Registration Guide", 0, takenSlugs())
	require.NoError(t, err)
	assert.Equal(t, "birth-registration-guide", got)

	got, err = assignSlug(ctx, "", "News", 0, takenSlugs("news", "news-2"))
	require.NoError(t, err)
	assert.Equal(t, "news-3", got)

	_, err = assignSlug(ctx, "news", "Ignored", 0, takenSlugs("news"))
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = assignSlug(ctx, "", "!!!", 0, takenSlugs())
	assert.ErrorIs(t, err, apperr.ErrValidation)

	boom := errors.New("db down")
	_, err = assignSlug(ctx, "", "News", 0, func(context.Context, string, uint) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestAssignSlug_UsesLastSuffix(t *testing.T) {
	ctx := context.Background()

	taken := []string{"news"}
	for i := 2; i < maxSlugAttempts; i++ {
		taken = append(taken, fmt.Sprintf("news-%d", i))
	}
	got, err := assignSlug(ctx, "", "News", 0, takenSlugs(taken...))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("news-%d", maxSlugAttempts), got)

	taken = append(taken, fmt.Sprintf("news-%d", maxSlugAttempts))
	_, err = assignSlug(ctx, "", "News", 0, takenSlugs(taken...))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

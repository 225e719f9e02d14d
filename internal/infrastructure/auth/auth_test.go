//go:build unit
// +build unit

package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer() *JWTIssuer {
	return NewJWTIssuer(&config.AuthSettings{JWTSecret: testSecret, TokenTTL: time.Hour, Issuer: "amiuddokta"})
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := newTestIssuer()
	user := &users.User{ID: 42, Role: users.RoleAdmin}

	token, issued, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))
	assert.NotEmpty(t, issued.TokenID)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, users.RoleAdmin, claims.Role)
	assert.Equal(t, issued.TokenID, claims.TokenID)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTIssuer_RejectsExpiredAndForeignTokens(t *testing.T) {
	issuer := newTestIssuer()
	token, _, err := issuer.Issue(&users.User{ID: 1, Role: users.RoleEntrepreneur})
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	other := NewJWTIssuer(&config.AuthSettings{JWTSecret: strings.Repeat("x", 32), TokenTTL: time.Hour, Issuer: "amiuddokta"})
	foreign, _, err := other.Issue(&users.User{ID: 1})
	require.NoError(t, err)
	_, err = newTestIssuer().Parse(foreign)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = newTestIssuer().Parse(none)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = newTestIssuer().Parse("garbage")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, h.Compare(hash, "secret123"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), apperr.ErrUnauthorized)
}

func TestMemoryDenylist(t *testing.T) {
	d := NewMemoryDenylist()
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "a", time.Now().Add(time.Minute)))
	require.NoError(t, d.Revoke(ctx, "old", time.Now().Add(-time.Minute)))

	revoked, err := d.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)

	d.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	revoked, err = d.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisDenylist(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	d, closeFn, err := NewDenylist(ctx, &config.RedisSettings{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	assert.True(t, mr.Exists(denylistKeyPrefix+"jti-1"))

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewDenylist_FallsBackToMemory(t *testing.T) {
	d, closeFn, err := NewDenylist(context.Background(), &config.RedisSettings{})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.IsType(t, &MemoryDenylist{}, d)
}

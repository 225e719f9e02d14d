package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the caller's users.Claims.
const ClaimsKey = "claims"

// Authenticator verifies a bearer token. users.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*users.Claims, error)
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// ok is false when the header is present but malformed.
func bearerToken(header string) (token string, ok bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Auth rejects requests without a valid bearer token and stores the caller's
// claims under ClaimsKey.
func Auth(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.Fail(ctx, http.StatusUnauthorized, "authorization header missing")
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			response.Fail(ctx, http.StatusUnauthorized, "authorization header must be Bearer <token>")
			return
		}

		claims, err := authenticator.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			response.Error(ctx, err)
			return
		}
		ctx.Set(ClaimsKey, *claims)
		ctx.Next()
	}
}

// OptionalAuth stores claims when a valid bearer token is sent and lets the
// request through anonymously otherwise.
func OptionalAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token, ok := bearerToken(ctx.GetHeader("Authorization")); ok {
			if claims, err := authenticator.Authenticate(ctx.Request.Context(), token); err == nil {
				ctx.Set(ClaimsKey, *claims)
			}
		}
		ctx.Next()
	}
}

// RequireRole allows only callers with one of roles. It must run after Auth.
func RequireRole(roles ...users.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			response.Fail(ctx, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}
		response.Fail(ctx, http.StatusForbidden, "insufficient permissions")
	}
}

// ClaimsFrom returns the claims stored by Auth or OptionalAuth.
func ClaimsFrom(ctx *gin.Context) (users.Claims, bool) {
	v, ok := ctx.Get(ClaimsKey)
	if !ok {
		return users.Claims{}, false
	}
	claims, ok := v.(users.Claims)
	return claims, ok
}

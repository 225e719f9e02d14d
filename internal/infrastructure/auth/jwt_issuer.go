package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClaims is the JWT payload.
type tokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTIssuer creates an issuer from the auth settings.
func NewJWTIssuer(settings *config.AuthSettings) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(settings.JWTSecret),
		ttl:    settings.TokenTTL,
		issuer: settings.Issuer,
		now:    time.Now,
	}
}

// Issue implements users.TokenIssuer.
func (i *JWTIssuer) Issue(user *users.User) (string, *users.Claims, error) {
	now := i.now()
	claims := tokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, toDomainClaims(&claims), nil
}

// Parse implements users.TokenIssuer. Every failure wraps apperr.ErrUnauthorized.
func (i *JWTIssuer) Parse(token string) (*users.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", apperr.ErrUnauthorized)
	case err != nil:
		return nil, fmt.Errorf("invalid token: %w", apperr.ErrUnauthorized)
	case !parsed.Valid || claims.UserID == 0 || claims.ID == "":
		return nil, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}
	return toDomainClaims(&claims), nil
}

func toDomainClaims(c *tokenClaims) *users.Claims {
	return &users.Claims{
		UserID:    c.UserID,
		Role:      users.Role(c.Role),
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

var errInvalidCredentials = fmt.Errorf("invalid phone or password: %w", apperr.ErrUnauthorized)

// authService implements users.AuthService
type authService struct {
	repo     users.Repository
	hasher   users.PasswordHasher
	issuer   users.TokenIssuer
	denylist users.TokenDenylist
	logger   logger.Logger
}

// NewAuthService creates a new instance of users.AuthService
func NewAuthService(repo users.Repository, hasher users.PasswordHasher, issuer users.TokenIssuer, denylist users.TokenDenylist, log logger.Logger) (users.AuthService, error) {
	return &authService{repo: repo, hasher: hasher, issuer: issuer, denylist: denylist, logger: log}, nil
}

// Login checks the credentials of an active account and issues a token.
func (s *authService) Login(ctx context.Context, input *users.LoginInput) (*users.Session, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}

	user, err := s.repo.GetByPhone(ctx, input.Phone)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("account is inactive: %w", apperr.ErrForbidden)
	}

	token, claims, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &users.Session{Token: token, ExpiresAt: claims.ExpiresAt, User: user}, nil
}

// Logout revokes the token until it would have expired.
func (s *authService) Logout(ctx context.Context, claims users.Claims) error {
	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}
	s.logger.Info("user logged out", "user_id", claims.UserID)
	return nil
}

// Authenticate verifies a bearer token. The role is re-read from the account
// so demotions and deactivations apply to tokens already issued.
func (s *authService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	claims, err := s.issuer.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("token revoked: %w", apperr.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("account no longer exists: %w", apperr.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("account is inactive: %w", apperr.ErrUnauthorized)
	}
	claims.Role = user.Role
	return claims, nil
}

func (s *authService) Me(ctx context.Context, claims users.Claims) (*users.User, error) {
	return s.repo.GetByID(ctx, claims.UserID)
}

// ChangePassword replaces the caller's password after checking the old one.
func (s *authService) ChangePassword(ctx context.Context, claims users.Claims, input *users.ChangePasswordInput) error {
	if err := validators.Struct(input); err != nil {
		return apperr.Validation(err)
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, input.OldPassword); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return apperr.Validationf("old password is incorrect")
		}
		return err
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, hash)
}

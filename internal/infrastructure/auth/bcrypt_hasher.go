package auth

import (
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements users.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher uses bcrypt.DefaultCost when cost is zero.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns an apperr.ErrUnauthorized error on mismatch.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("password mismatch: %w", apperr.ErrUnauthorized)
	default:
		return fmt.Errorf("failed to compare password: %w", err)
	}
}

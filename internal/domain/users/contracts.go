package users

import (
	"context"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// Claims identifies the caller of an authenticated request.
type Claims struct {
	UserID    uint
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the caller is an administrator.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccess reports whether the caller may read a record owned by ownerID.
func (c Claims) CanAccess(ownerID uint) bool {
	return c.IsAdmin() || c.UserID == ownerID
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// Repository defines persistence for users.
type Repository interface {
	crud.Repository[User]
	// GetByPhone returns apperr.ErrNotFound when no user has the phone number.
	GetByPhone(ctx context.Context, phone string) (*User, error)
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	// CountByRole returns the number of users per role.
	CountByRole(ctx context.Context) (map[Role]int64, error)
}

// Service manages user accounts.
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*User, error)
	GetByID(ctx context.Context, actor Claims, id uint) (*User, error)
	List(ctx context.Context, query *crud.ListQuery) ([]*User, pagination.Meta, error)
	Update(ctx context.Context, id uint, input *UpdateInput) (*User, error)
	DeleteByID(ctx context.Context, actor Claims, id uint) error
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, input *LoginInput) (*Session, error)
	Logout(ctx context.Context, claims Claims) error
	Authenticate(ctx context.Context, token string) (*Claims, error)
	Me(ctx context.Context, claims Claims) (*User, error)
	ChangePassword(ctx context.Context, claims Claims, input *ChangePasswordInput) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and parses bearer tokens.
type TokenIssuer interface {
	Issue(user *User) (string, *Claims, error)
	Parse(token string) (*Claims, error)
}

// TokenDenylist remembers revoked token IDs until they would have expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package users

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// Role separates back-office administrators from field agents.
type Role string

// Roles.
const (
	RoleAdmin        Role = "admin"
	RoleEntrepreneur Role = "entrepreneur"
)

// Status controls whether a user may log in.
type Status string

// Statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is an administrator or an entrepreneur (agent). Entrepreneurs pay for
// applications from Balance.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	Phone        string    `json:"phone" validate:"required,bdphone"`
	Email        *string   `json:"email,omitempty" validate:"omitempty,email,max=150"`
	PasswordHash string    `json:"-" validate:"required"`
	Role         Role      `json:"role" validate:"required,oneof=admin entrepreneur"`
	Status       Status    `json:"status" validate:"required,oneof=active inactive"`
	Balance      float64   `json:"balance" validate:"gte=0"`
	NID          *string   `json:"nid,omitempty" validate:"omitempty,numeric,min=10,max=17"`
	Image        *string   `json:"image,omitempty" validate:"omitempty,max=255"`
	DivisionID   *uint     `json:"division_id,omitempty"`
	DistrictID   *uint     `json:"district_id,omitempty"`
	UpazilaID    *uint     `json:"upazila_id,omitempty"`
	UnionID      *uint     `json:"union_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks field formats.
func (u User) Validate() error {
	if err := validators.Struct(u); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the user may log in.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// CreateInput is the payload for creating a user. Password is hashed by the
// service before the user is stored.
type CreateInput struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Phone      string  `json:"phone" validate:"required,bdphone"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   string  `json:"password" validate:"required,min=6,max=72"`
	Role       Role    `json:"role" validate:"omitempty,oneof=admin entrepreneur"`
	NID        *string `json:"nid"`
	Image      *string `json:"image"`
	DivisionID *uint   `json:"division_id"`
	DistrictID *uint   `json:"district_id"`
	UpazilaID  *uint   `json:"upazila_id"`
	UnionID    *uint   `json:"union_id"`
}

// UpdateInput is a partial update of a user. Balance is not editable here;
// it only moves through applications and recharge requests.
type UpdateInput struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Role       *Role   `json:"role"`
	Status     *Status `json:"status"`
	NID        *string `json:"nid"`
	Image      *string `json:"image"`
	DivisionID *uint   `json:"division_id"`
	DistrictID *uint   `json:"district_id"`
	UpazilaID  *uint   `json:"upazila_id"`
	UnionID    *uint   `json:"union_id"`
}

// Apply copies the set fields onto u.
func (in UpdateInput) Apply(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Email != nil {
		u.Email = in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	if in.NID != nil {
		u.NID = in.NID
	}
	if in.Image != nil {
		u.Image = in.Image
	}
	if in.DivisionID != nil {
		u.DivisionID = in.DivisionID
	}
	if in.DistrictID != nil {
		u.DistrictID = in.DistrictID
	}
	if in.UpazilaID != nil {
		u.UpazilaID = in.UpazilaID
	}
	if in.UnionID != nil {
		u.UnionID = in.UnionID
	}
}

// ChangePasswordInput is the payload of a self-service password change.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72,nefield=OldPassword"`
}

// LoginInput is the payload of a login request.
type LoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

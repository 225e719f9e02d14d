package content

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// Center is a physical service point listed on the website.
type Center struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name" validate:"required,max=150"`
	Address    string    `json:"address" validate:"required,max=255"`
	Phone      *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      *string   `json:"email,omitempty" validate:"omitempty,email"`
	MapURL     *string   `json:"map_url,omitempty" validate:"omitempty,url"`
	Image      *string   `json:"image,omitempty" validate:"omitempty,max=255"`
	DivisionID *uint     `json:"division_id,omitempty"`
	DistrictID *uint     `json:"district_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks field formats.
func (c Center) Validate() error {
	if err := validators.Struct(c); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// CenterInput creates or partially updates a center.
type CenterInput struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	MapURL     *string `json:"map_url"`
	Image      *string `json:"image"`
	DivisionID *uint   `json:"division_id"`
	DistrictID *uint   `json:"district_id"`
}

// Apply copies the set fields onto c.
func (in CenterInput) Apply(c *Center) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Email != nil {
		c.Email = in.Email
	}
	if in.MapURL != nil {
		c.MapURL = in.MapURL
	}
	if in.Image != nil {
		c.Image = in.Image
	}
	if in.DivisionID != nil {
		c.DivisionID = in.DivisionID
	}
	if in.DistrictID != nil {
		c.DistrictID = in.DistrictID
	}
}

package content

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// TeamMember is a person shown on the "our team" page, ordered by Position.
type TeamMember struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Designation string    `json:"designation" validate:"required,max=100"`
	Bio         *string   `json:"bio,omitempty"`
	Image       *string   `json:"image,omitempty" validate:"omitempty,max=255"`
	Phone       *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`
	Facebook    *string   `json:"facebook,omitempty" validate:"omitempty,url"`
	LinkedIn    *string   `json:"linkedin,omitempty" validate:"omitempty,url"`
	Position    int       `json:"position" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks field formats.
func (m TeamMember) Validate() error {
	if err := validators.Struct(m); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// TeamMemberInput creates or partially updates a team member.
type TeamMemberInput struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Bio         *string `json:"bio"`
	Image       *string `json:"image"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Facebook    *string `json:"facebook"`
	LinkedIn    *string `json:"linkedin"`
	Position    *int    `json:"position"`
}

// Apply copies the set fields onto m.
func (in TeamMemberInput) Apply(m *TeamMember) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Designation != nil {
		m.Designation = *in.Designation
	}
	if in.Bio != nil {
		m.Bio = in.Bio
	}
	if in.Image != nil {
		m.Image = in.Image
	}
	if in.Phone != nil {
		m.Phone = in.Phone
	}
	if in.Email != nil {
		m.Email = in.Email
	}
	if in.Facebook != nil {
		m.Facebook = in.Facebook
	}
	if in.LinkedIn != nil {
		m.LinkedIn = in.LinkedIn
	}
	if in.Position != nil {
		m.Position = *in.Position
	}
}

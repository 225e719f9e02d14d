// Package publicservices models the civil-registration services agents can
// file applications for, e.g. birth or death registration.
package publicservices

import (
	"context"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// Status controls whether new applications may be filed for a service.
type Status string

// Statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PublicService is an offering with a fixed price charged to the agent's
// balance. FormSchema is an optional JSON schema the application data must
// satisfy.
type PublicService struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title" validate:"required,max=150"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Icon        *string   `json:"icon,omitempty" validate:"omitempty,max=255"`
	FormSchema  *string   `json:"form_schema,omitempty"`
	Status      Status    `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks field formats. The form schema itself is checked by the
// service through a SchemaValidator.
func (s PublicService) Validate() error {
	if err := validators.Struct(s); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// IsActive reports whether applications may be filed.
func (s PublicService) IsActive() bool {
	return s.Status == StatusActive
}

// Input creates or partially updates a public service.
type Input struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Icon        *string  `json:"icon"`
	FormSchema  *string  `json:"form_schema"`
	Status      *Status  `json:"status"`
}

// Apply copies the set fields onto s. New services default to active.
func (in Input) Apply(s *PublicService) {
	if s.Status == "" {
		s.Status = StatusActive
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.Icon != nil {
		s.Icon = in.Icon
	}
	if in.FormSchema != nil {
		s.FormSchema = in.FormSchema
		if *in.FormSchema == "" {
			s.FormSchema = nil
		}
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
}

// SchemaValidator compiles JSON schemas and validates documents against them.
type SchemaValidator interface {
	// CheckSchema returns an apperr.ErrValidation error if schema does not compile.
	CheckSchema(schema string) error
	// Validate returns an apperr.ErrValidation error listing every violation.
	Validate(ctx context.Context, schema string, document []byte) error
}

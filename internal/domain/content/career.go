package content

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// CareerStatus controls whether a job posting accepts applicants.
type CareerStatus string

// Career statuses.
const (
	CareerOpen   CareerStatus = "open"
	CareerClosed CareerStatus = "closed"
)

// Career is a job posting.
type Career struct {
	ID             uint         `json:"id"`
	Title          string       `json:"title" validate:"required,max=150"`
	Description    string       `json:"description" validate:"required"`
	Location       string       `json:"location" validate:"required,max=150"`
	EmploymentType string       `json:"employment_type" validate:"required,oneof=full-time part-time contract internship"`
	Vacancies      int          `json:"vacancies" validate:"gte=1"`
	Salary         *string      `json:"salary,omitempty" validate:"omitempty,max=100"`
	Deadline       time.Time    `json:"deadline" validate:"required"`
	Status         CareerStatus `json:"status" validate:"required,oneof=open closed"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Validate checks field formats.
func (c Career) Validate() error {
	if err := validators.Struct(c); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// CareerInput creates or partially updates a career.
type CareerInput struct {
	Title          *string       `json:"title"`
	Description    *string       `json:"description"`
	Location       *string       `json:"location"`
	EmploymentType *string       `json:"employment_type"`
	Vacancies      *int          `json:"vacancies"`
	Salary         *string       `json:"salary"`
	Deadline       *time.Time    `json:"deadline"`
	Status         *CareerStatus `json:"status"`
}

// Apply copies the set fields onto c. New careers default to open with one
// vacancy.
func (in CareerInput) Apply(c *Career) {
	if c.Status == "" {
		c.Status = CareerOpen
	}
	if c.Vacancies == 0 {
		c.Vacancies = 1
	}
	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.EmploymentType != nil {
		c.EmploymentType = *in.EmploymentType
	}
	if in.Vacancies != nil {
		c.Vacancies = *in.Vacancies
	}
	if in.Salary != nil {
		c.Salary = in.Salary
	}
	if in.Deadline != nil {
		c.Deadline = *in.Deadline
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
}

package content

import (
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// ContactStatus tracks whether an administrator has opened a message.
type ContactStatus string

// Contact statuses.
const (
	ContactUnread ContactStatus = "unread"
	ContactRead   ContactStatus = "read"
)

// ContactForm is a message submitted from the public contact page.
type ContactForm struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name" validate:"required,max=100"`
	Email     string        `json:"email" validate:"required,email,max=150"`
	Phone     *string       `json:"phone,omitempty" validate:"omitempty,max=30"`
	Subject   string        `json:"subject" validate:"required,max=200"`
	Message   string        `json:"message" validate:"required,max=5000"`
	Status    ContactStatus `json:"status" validate:"required,oneof=unread read"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks field formats.
func (c ContactForm) Validate() error {
	if err := validators.Struct(c); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

// ContactInput is the public submission payload.
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// ToContactForm builds an unread message from the submission.
func (in ContactInput) ToContactForm() *ContactForm {
	return &ContactForm{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  ContactUnread,
	}
}

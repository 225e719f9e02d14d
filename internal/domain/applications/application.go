// Package applications models civil-registration applications filed by
// entrepreneurs on behalf of citizens.
package applications

import (
	"encoding/json"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// Status is the processing state of an application.
type Status string

// Statuses.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusRejected},
	StatusProcessing: {StatusCompleted, StatusRejected},
}

// CanTransition reports whether an application may move from one status to
// another. Completed and rejected are final.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application is a request filed for a public service. Charge is the service
// price at filing time and was debited from the owner's balance.
type Application struct {
	ID             uint            `json:"id"`
	TrackingNo     string          `json:"tracking_no" validate:"required,max=32"`
	UserID         uint            `json:"user_id" validate:"required"`
	ServiceID      uint            `json:"service_id" validate:"required"`
	ApplicantName  string          `json:"applicant_name" validate:"required,max=150"`
	ApplicantPhone *string         `json:"applicant_phone,omitempty" validate:"omitempty,bdphone"`
	Data           json.RawMessage `json:"data,omitempty"`
	Charge         float64         `json:"charge" validate:"gte=0"`
	Status         Status          `json:"status" validate:"required,oneof=pending processing completed rejected"`
	Note           *string         `json:"note,omitempty" validate:"omitempty,max=500"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate checks field formats and that Data, when present, is a JSON object.
func (a Application) Validate() error {
	if err := validators.Struct(a); err != nil {
		return apperr.Validation(err)
	}
	if len(a.Data) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(a.Data, &obj); err != nil {
			return apperr.Validationf("data must be a JSON object")
		}
	}
	return nil
}

// CreateInput is the payload an entrepreneur submits.
type CreateInput struct {
	ServiceID      uint            `json:"service_id" validate:"required"`
	ApplicantName  string          `json:"applicant_name" validate:"required,max=150"`
	ApplicantPhone *string         `json:"applicant_phone" validate:"omitempty,bdphone"`
	Data           json.RawMessage `json:"data"`
}

// StatusInput is the payload an administrator submits to move an application.
type StatusInput struct {
	Status Status  `json:"status" validate:"required,oneof=processing completed rejected"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agentForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,bdphone"`
	Role  string `json:"role" validate:"omitempty,oneof=admin entrepreneur"`
	Slug  string `json:"slug" validate:"omitempty,slug"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		form    agentForm
		wantErr []string
	}{
		{"valid", agentForm{Name: "Rahim", Phone: "01712345678", Role: "entrepreneur", Slug: "birth-registration"}, nil},
		{"missing name", agentForm{Phone: "01712345678"}, []string{"name is required"}},
		{"landline number", agentForm{Name: "Rahim", Phone: "0212345678"}, []string{"phone must be a valid Bangladeshi mobile number"}},
		{"operator prefix 012", agentForm{Name: "Rahim", Phone: "01212345678"}, []string{"phone must be a valid Bangladeshi mobile number"}},
		{"bad role", agentForm{Name: "Rahim", Phone: "01912345678", Role: "root"}, []string{"role must be one of [admin entrepreneur]"}},
		{"bad slug", agentForm{Name: "Rahim", Phone: "01912345678", Slug: "Not A Slug"}, []string{"slug is invalid (slug)"}},
		{"multiple", agentForm{}, []string{"name is required", "phone is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.form)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestGet_ReturnsSingleton(t *testing.T) {
	assert.Same(t, Get(), Get())
}

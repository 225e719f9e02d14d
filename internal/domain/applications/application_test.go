//go:build unit
// +build unit

package applications

import (
	"encoding/json"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusRejected, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusRejected, false},
		{StatusRejected, StatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestApplication_Validate(t *testing.T) {
	app := Application{
		TrackingNo:    "20261016-AB12CD34",
		UserID:        2,
		ServiceID:     1,
		ApplicantName: "Fatema Begum",
		Data:          json.RawMessage(`{"father_name":"Abul"}`),
		Charge:        100,
		Status:        StatusPending,
	}
	assert.NoError(t, app.Validate())

	app.Data = json.RawMessage(`["not","an","object"]`)
	assert.ErrorIs(t, app.Validate(), apperr.ErrValidation)

	app.Data = nil
	app.Status = "archived"
	assert.ErrorIs(t, app.Validate(), apperr.ErrValidation)
}

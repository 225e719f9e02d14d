//go:build unit
// +build unit

package publicservices

import (
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestInput_ApplyDefaultsAndClearsSchema(t *testing.T) {
	title := "Birth Registration"
	desc := "New birth registration certificate"
	price := 150.0

	var s PublicService
	Input{Title: &title, Description: &desc, Price: &price}.Apply(&s)

	assert.Equal(t, StatusActive, s.Status)
	assert.NoError(t, s.Validate())
	assert.True(t, s.IsActive())

	schema := `{"type":"object"}`
	Input{FormSchema: &schema}.Apply(&s)
	assert.Equal(t, schema, *s.FormSchema)

	empty := ""
	Input{FormSchema: &empty}.Apply(&s)
	assert.Nil(t, s.FormSchema)
}

func TestPublicService_ValidateRejectsNegativePrice(t *testing.T) {
	s := PublicService{Title: "Death Registration", Description: "x", Price: -10, Status: StatusActive}
	assert.ErrorIs(t, s.Validate(), apperr.ErrValidation)
}

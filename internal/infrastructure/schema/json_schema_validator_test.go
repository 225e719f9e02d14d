//go:build unit
// +build unit

package schema

import (
	"context"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

const birthSchema = `{
	"type": "object",
	"required": ["child_name", "birth_date"],
	"properties": {
		"child_name": {"type": "string", "minLength": 2},
		"birth_date": {"type": "string"}
	}
}`

func TestJSONSchemaValidator_CheckSchema(t *testing.T) {
	v := NewJSONSchemaValidator()

	assert.NoError(t, v.CheckSchema(birthSchema))
	assert.ErrorIs(t, v.CheckSchema(`{"type": 12}`), apperr.ErrValidation)
	assert.ErrorIs(t, v.CheckSchema(`not json`), apperr.ErrValidation)
}

func TestJSONSchemaValidator_Validate(t *testing.T) {
	v := NewJSONSchemaValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, birthSchema, []byte(`{"child_name":"Ayesha","birth_date":"2026-01-02"}`)))

	err := v.Validate(ctx, birthSchema, []byte(`{"child_name":"A"}`))
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "birth_date")

	assert.ErrorIs(t, v.Validate(ctx, birthSchema, nil), apperr.ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, birthSchema, []byte(`{broken`)), apperr.ErrValidation)
}

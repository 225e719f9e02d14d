// Package schema validates application form data against the JSON schema
// attached to a public service.
package schema

import (
	"context"
	"strings"
	"sync"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchemaValidator compiles schemas once and caches them by source text.
type JSONSchemaValidator struct {
	cache sync.Map
}

// NewJSONSchemaValidator creates a validator with an empty cache.
func NewJSONSchemaValidator() publicservices.SchemaValidator {
	return &JSONSchemaValidator{}
}

func (v *JSONSchemaValidator) compile(source string) (*gojsonschema.Schema, error) {
	if cached, ok := v.cache.Load(source); ok {
		return cached.(*gojsonschema.Schema), nil
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, apperr.Validationf("form_schema is not a valid JSON schema: %v", err)
	}
	v.cache.Store(source, compiled)
	return compiled, nil
}

// CheckSchema implements publicservices.SchemaValidator.
func (v *JSONSchemaValidator) CheckSchema(source string) error {
	_, err := v.compile(source)
	return err
}

// Validate implements publicservices.SchemaValidator.
func (v *JSONSchemaValidator) Validate(ctx context.Context, source string, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	compiled, err := v.compile(source)
	if err != nil {
		return err
	}
	if len(document) == 0 {
		document = []byte("{}")
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return apperr.Validationf("data is not valid JSON: %v", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return apperr.Validationf("data does not match the service form: %s", strings.Join(msgs, "; "))
}

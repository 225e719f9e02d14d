//go:build unit
// +build unit

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NotFound("user", 4), http.StatusNotFound},
		{"wrapped conflict", fmt.Errorf("create user: %w", ErrConflict), http.StatusConflict},
		{"validation", Validationf("amount must be positive"), http.StatusBadRequest},
		{"balance", ErrInsufficientBalance, http.StatusBadRequest},
		{"transition", ErrInvalidStatusTransition, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("application", 12)
	assert.EqualError(t, err, "application with id 12 not found")
	assert.ErrorIs(t, err, ErrNotFound)
}

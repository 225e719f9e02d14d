//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/middleware"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	api := newTestAPI(t, Options{})

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPost, "/api/v1/applications"},
		{http.MethodPatch, "/api/v1/applications/1/status"},
		{http.MethodGet, "/api/v1/recharges"},
		{http.MethodPost, "/api/v1/media"},
		{http.MethodDelete, "/api/v1/blogs/1"},
		{http.MethodPatch, "/api/v1/centers/1"},
		{http.MethodGet, "/api/v1/contacts"},
		{http.MethodGet, "/api/v1/dashboard/summary"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := api.json(tt.method, tt.url, "", "")

			assert.Equal(t, http.StatusUnauthorized, w.Code, "route should exist and require a token")
			assert.Contains(t, w.Body.String(), "authorization header missing")
		})
	}
}

func TestSetupRoutes_AdminOnlyWrites(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.json(http.MethodPost, "/api/v1/services", agentToken, `{"title":"Birth"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.json(http.MethodPost, "/api/v1/services", "garbage", `{"title":"Birth"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.publicServices.On("Create", mock.Anything, mock.MatchedBy(func(in publicservices.Input) bool {
		return in.Title != nil && *in.Title == "Birth"
	})).Return(&publicservices.PublicService{ID: 5, Title: "Birth"}, nil)

	w = api.json(http.MethodPost, "/api/v1/services", adminToken, `{"title":"Birth"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Service created successfully", decodeEnvelope(t, w).Message)
	api.publicServices.AssertExpectations(t)
}

func TestSetupRoutes_PublicReadsAllowAnonymous(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.publicServices.On("List", mock.Anything, mock.Anything).
		Return([]*publicservices.PublicService{{ID: 1}}, pagination.Meta{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, nil)

	w := api.json(http.MethodGet, "/api/v1/services", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, int64(1), env.Meta.Total)
}

func TestSetupRoutes_Health(t *testing.T) {
	healthy := newTestAPI(t, Options{Health: func(context.Context) error { return nil }})
	assert.Equal(t, http.StatusOK, healthy.json(http.MethodGet, "/health", "", "").Code)

	down := newTestAPI(t, Options{Health: func(context.Context) error { return errors.New("dial tcp: refused") }})
	w := down.json(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database unreachable")
}

func TestSetupRoutes_MetricsAndRateLimit(t *testing.T) {
	api := newTestAPI(t, Options{
		Metrics:     middleware.NewMetrics(),
		RateLimiter: middleware.NewRateLimiter(1, 1),
	})

	assert.Equal(t, http.StatusBadRequest, api.json(http.MethodPost, "/api/v1/auth/login", "", `{`).Code)
	assert.Equal(t, http.StatusTooManyRequests, api.json(http.MethodPost, "/api/v1/auth/login", "", `{`).Code)

	w := api.json(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/v1/auth/login"`)
}

//go:build unit
// +build unit

package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	OK(ctx, http.StatusCreated, "created", map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.NotContains(t, body, "meta")
}

func TestList_IncludesMeta(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	List(ctx, "fetched", []string{}, pagination.NewMeta(pagination.Options{Page: 2, Limit: 10}, 25))

	body := decode(t, w)
	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 25, meta["total"])
	assert.EqualValues(t, 3, meta["totalPages"])
	assert.Equal(t, []any{}, body["data"])
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.NotFound("user", 4), http.StatusNotFound, "user with id 4 not found"},
		{fmt.Errorf("slug x: %w", apperr.ErrConflict), http.StatusConflict, "slug x: already exists"},
		{apperr.ErrInsufficientBalance, http.StatusBadRequest, "insufficient balance"},
		{apperr.ErrForbidden, http.StatusForbidden, "forbidden"},
		{errors.New("connection reset"), http.StatusInternalServerError, InternalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			Error(ctx, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
			assert.True(t, ctx.IsAborted())
		})
	}
}

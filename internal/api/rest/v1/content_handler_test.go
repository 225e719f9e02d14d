//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBlogPostHandler_Visibility(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.posts.On("List", mock.Anything, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.Filters["status"] == string(content.PostPublished)
	})).Return([]*content.BlogPost{}, pagination.Meta{Page: 1, Limit: 10}, nil).Once()
	api.posts.On("List", mock.Anything, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.Filters["status"] == string(content.PostDraft)
	})).Return([]*content.BlogPost{}, pagination.Meta{Page: 1, Limit: 10}, nil).Once()
	api.posts.On("GetByID", mock.Anything, uint(5)).Return(&content.BlogPost{ID: 5, Status: content.PostDraft}, nil)
	api.posts.On("GetBySlug", mock.Anything, "hello-world", false).Return(&content.BlogPost{ID: 6, Slug: "hello-world", Status: content.PostPublished}, nil)

	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/blogs?status=draft", agentToken, "").Code)
	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/blogs?status=draft", adminToken, "").Code)

	assert.Equal(t, http.StatusNotFound, api.json(http.MethodGet, "/api/v1/blogs/5", "", "").Code)
	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/blogs/5", adminToken, "").Code)

	w := api.json(http.MethodGet, "/api/v1/blogs/slug/hello-world", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello-world")
	api.posts.AssertExpectations(t)
}

func TestBlogPostHandler_CreateUsesCaller(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.posts.On("CreateAuthored", mock.Anything, adminClaims.UserID, mock.MatchedBy(func(in content.PostInput) bool {
		return in.Title != nil && *in.Title == "Notice"
	})).Return(&content.BlogPost{ID: 1, Slug: "notice"}, nil)

	w := api.json(http.MethodPost, "/api/v1/blogs", adminToken, `{"title":"Notice","content":"x","category_id":1}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	api.posts.AssertExpectations(t)
}

func TestContactHandler(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.contacts.On("Submit", mock.Anything, mock.MatchedBy(func(in *content.ContactInput) bool {
		return in.Email == "rafi@example.com"
	})).Return(&content.ContactForm{ID: 1, Status: content.ContactUnread}, nil)
	api.contacts.On("Open", mock.Anything, uint(1)).Return(&content.ContactForm{ID: 1, Status: content.ContactRead}, nil)

	body := `{"name":"Rafi","email":"rafi@example.com","subject":"Hi","message":"Hello"}`
	assert.Equal(t, http.StatusCreated, api.json(http.MethodPost, "/api/v1/contacts", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, api.json(http.MethodGet, "/api/v1/contacts/1", "", "").Code)

	w := api.json(http.MethodGet, "/api/v1/contacts/1", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"read"`)
	api.contacts.AssertExpectations(t)
}

func TestMediaHandler_Upload(t *testing.T) {
	api := newTestAPI(t, Options{MaxUploadBytes: 1 << 20})
	api.media.On("Upload", mock.Anything, mock.Anything, adminClaims.UserID).
		Return([]*media.Media{{ID: 1, FileName: "a.webp", URL: "/uploads/a.webp"}}, nil)

	body, contentType := testutil.CreateFilesBody(t, []testutil.FormFile{{Name: "a.png", Content: testutil.PNGBytes(t, 4, 4)}}, nil)
	w := api.request(http.MethodPost, "/api/v1/media", adminToken, body, contentType)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "/uploads/a.webp")

	w = api.json(http.MethodPost, "/api/v1/media", adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid form data", decodeEnvelope(t, w).Message)
	api.media.AssertExpectations(t)
}

func TestSystemHandler_Summary(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.dashboard.On("Summary", mock.Anything).Return(&dashboard.Summary{
		UsersByRole:      map[string]int64{"admin": 1, "entrepreneur": 4},
		PendingRecharges: 2,
	}, nil)

	w := api.json(http.MethodGet, "/api/v1/dashboard/summary", adminToken, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_recharges":2`)
	api.dashboard.AssertExpectations(t)
}

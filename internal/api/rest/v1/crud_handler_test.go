//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCRUDHandler_ListParsesQuery(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.addresses.On("List", mock.Anything, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.Page == 2 && q.Limit == 5 && q.SearchTerm == "gazi" &&
			q.Filters["type"] == "district" && q.Filters["parent_id"] == uint(3)
	})).Return([]*addresses.Address{{ID: 8, Name: "Gazipur"}}, pagination.Meta{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, nil)

	w := api.json(http.MethodGet, "/api/v1/addresses?page=2&limit=5&searchTerm=gazi&type=district&parent_id=3", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Contains(t, string(env.Data), "Gazipur")
	api.addresses.AssertExpectations(t)
}

func TestCRUDHandler_ListRejectsBadNumericFilter(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.json(http.MethodGet, "/api/v1/addresses?parent_id=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "parent_id must be a positive integer")
	api.addresses.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCRUDHandler_TeamMembersDefaultToPositionOrder(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.teamMembers.On("List", mock.Anything, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.SortBy == "position" && q.SortOrder == pagination.SortAsc
	})).Return([]*content.TeamMember{}, pagination.Meta{Page: 1, Limit: 10}, nil).Once()
	api.teamMembers.On("List", mock.Anything, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.SortBy == "name" && q.SortOrder == pagination.SortDesc
	})).Return([]*content.TeamMember{}, pagination.Meta{Page: 1, Limit: 10}, nil).Once()

	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/team-members", "", "").Code)
	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/team-members?sortBy=name", "", "").Code)
	api.teamMembers.AssertExpectations(t)
}

func TestCRUDHandler_GetByID(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.careers.On("GetByID", mock.Anything, uint(4)).Return(&content.Career{ID: 4, Title: "Field officer"}, nil)
	api.careers.On("GetByID", mock.Anything, uint(5)).Return(nil, apperr.NotFound("career", 5))

	w := api.json(http.MethodGet, "/api/v1/careers/4", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Field officer")

	w = api.json(http.MethodGet, "/api/v1/careers/5", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "career with id 5 not found", decodeEnvelope(t, w).Message)

	w = api.json(http.MethodGet, "/api/v1/careers/zero", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCRUDHandler_UpdateAndDelete(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.categories.On("Update", mock.Anything, uint(2), mock.MatchedBy(func(in content.CategoryInput) bool {
		return in.Name != nil && *in.Name == "Notices" && in.Slug == nil
	})).Return(&content.BlogCategory{ID: 2, Name: "Notices", Slug: "notices"}, nil)
	api.categories.On("DeleteByID", mock.Anything, uint(2)).Return(apperr.ErrConflict)

	w := api.json(http.MethodPatch, "/api/v1/blog-categories/2", adminToken, `{"name":"Notices"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Blog category updated successfully", decodeEnvelope(t, w).Message)

	w = api.json(http.MethodPatch, "/api/v1/blog-categories/2", adminToken, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.json(http.MethodDelete, "/api/v1/blog-categories/2", adminToken, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	api.categories.AssertExpectations(t)
}

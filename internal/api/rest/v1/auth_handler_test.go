//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.auth.On("Login", mock.Anything, &users.LoginInput{Phone: "01711111111", Password: "secret123"}).
		Return(&users.Session{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour), User: &users.User{ID: 2}}, nil)
	api.auth.On("Login", mock.Anything, &users.LoginInput{Phone: "01711111111", Password: "wrong"}).
		Return(nil, apperr.ErrUnauthorized)

	w := api.json(http.MethodPost, "/api/v1/auth/login", "", `{"phone":"01711111111","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"token":"jwt"`)

	w = api.json(http.MethodPost, "/api/v1/auth/login", "", `{"phone":"01711111111","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
	api.auth.AssertExpectations(t)
}

func TestAuthHandler_SessionEndpoints(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.auth.On("Me", mock.Anything, agentClaims).Return(&users.User{ID: 2, Phone: "01711111111"}, nil)
	api.auth.On("Logout", mock.Anything, agentClaims).Return(nil)
	api.auth.On("ChangePassword", mock.Anything, agentClaims, &users.ChangePasswordInput{OldPassword: "a", NewPassword: "b"}).
		Return(apperr.Validationf("old password is incorrect"))

	w := api.json(http.MethodGet, "/api/v1/auth/me", agentToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "01711111111")

	w = api.json(http.MethodPost, "/api/v1/auth/change-password", agentToken, `{"old_password":"a","new_password":"b"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "old password is incorrect")

	w = api.json(http.MethodPost, "/api/v1/auth/logout", agentToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	api.auth.AssertExpectations(t)
}

func TestUserHandler(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.users.On("GetByID", mock.Anything, agentClaims, uint(7)).Return(nil, apperr.ErrForbidden)
	api.users.On("GetByID", mock.Anything, agentClaims, uint(2)).Return(&users.User{ID: 2}, nil)
	api.users.On("DeleteByID", mock.Anything, adminClaims, uint(1)).Return(apperr.Validationf("you cannot delete your own account"))
	api.users.On("Create", mock.Anything, mock.MatchedBy(func(in *users.CreateInput) bool {
		return in.Phone == "01722222222" && in.Password == "secret123"
	})).Return(&users.User{ID: 9, Phone: "01722222222"}, nil)

	assert.Equal(t, http.StatusForbidden, api.json(http.MethodGet, "/api/v1/users/7", agentToken, "").Code)
	assert.Equal(t, http.StatusOK, api.json(http.MethodGet, "/api/v1/users/2", agentToken, "").Code)
	assert.Equal(t, http.StatusForbidden, api.json(http.MethodGet, "/api/v1/users", agentToken, "").Code)
	assert.Equal(t, http.StatusBadRequest, api.json(http.MethodDelete, "/api/v1/users/1", adminToken, "").Code)

	w := api.json(http.MethodPost, "/api/v1/users", adminToken, `{"name":"Karim","phone":"01722222222","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	api.users.AssertExpectations(t)
}

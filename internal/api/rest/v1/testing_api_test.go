//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken = "admin-token"
	agentToken = "agent-token"
)

var (
	adminClaims = users.Claims{UserID: 1, Role: users.RoleAdmin}
	agentClaims = users.Claims{UserID: 2, Role: users.RoleEntrepreneur}
)

// testAPI is a router wired to mocked services.
type testAPI struct {
	router         *gin.Engine
	auth           *MockAuthService
	users          *MockUserService
	addresses      *MockCRUDService[addresses.Address, addresses.Input]
	publicServices *MockCRUDService[publicservices.PublicService, publicservices.Input]
	applications   *MockApplicationService
	paymentMethods *MockCRUDService[payments.PaymentMethod, payments.MethodInput]
	recharges      *MockRechargeService
	media          *MockMediaService
	categories     *MockCRUDService[content.BlogCategory, content.CategoryInput]
	posts          *MockPostService
	careers        *MockCRUDService[content.Career, content.CareerInput]
	centers        *MockCRUDService[content.Center, content.CenterInput]
	teamMembers    *MockCRUDService[content.TeamMember, content.TeamMemberInput]
	contacts       *MockContactService
	dashboard      *MockDashboardService
}

func newTestAPI(t *testing.T, opts Options) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:         gin.New(),
		auth:           new(MockAuthService),
		users:          new(MockUserService),
		addresses:      new(MockCRUDService[addresses.Address, addresses.Input]),
		publicServices: new(MockCRUDService[publicservices.PublicService, publicservices.Input]),
		applications:   new(MockApplicationService),
		paymentMethods: new(MockCRUDService[payments.PaymentMethod, payments.MethodInput]),
		recharges:      new(MockRechargeService),
		media:          new(MockMediaService),
		categories:     new(MockCRUDService[content.BlogCategory, content.CategoryInput]),
		posts:          new(MockPostService),
		careers:        new(MockCRUDService[content.Career, content.CareerInput]),
		centers:        new(MockCRUDService[content.Center, content.CenterInput]),
		teamMembers:    new(MockCRUDService[content.TeamMember, content.TeamMemberInput]),
		contacts:       new(MockContactService),
		dashboard:      new(MockDashboardService),
	}

	admin, agent := adminClaims, agentClaims
	api.auth.On("Authenticate", mock.Anything, adminToken).Return(&admin, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, agentToken).Return(&agent, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, mock.Anything).Return(nil, apperr.ErrUnauthorized).Maybe()

	SetupRoutes(api.router, &Services{
		Users:          api.users,
		Auth:           api.auth,
		Addresses:      api.addresses,
		PublicServices: api.publicServices,
		Applications:   api.applications,
		PaymentMethods: api.paymentMethods,
		Recharges:      api.recharges,
		Media:          api.media,
		Categories:     api.categories,
		Posts:          api.posts,
		Careers:        api.careers,
		Centers:        api.centers,
		TeamMembers:    api.teamMembers,
		Contacts:       api.contacts,
		Dashboard:      api.dashboard,
	}, opts)
	return api
}

func (api *testAPI) request(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func (api *testAPI) json(method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return api.request(method, path, token, r, "application/json")
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

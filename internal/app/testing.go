//go:build integration
// +build integration

package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/auth"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/connector"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/imaging"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/persistence"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/schema"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestJWTSecret signs tokens in service tests.
const TestJWTSecret = "test-secret-test-secret-test-secret"

// TestServices holds every application service wired against a test database
type TestServices struct {
	Users          users.Service
	Auth           users.AuthService
	Addresses      crud.Service[addresses.Address, addresses.Input]
	PublicServices crud.Service[publicservices.PublicService, publicservices.Input]
	Applications   applications.Service
	PaymentMethods crud.Service[payments.PaymentMethod, payments.MethodInput]
	Recharges      payments.RechargeService
	Media          media.Service
	Categories     crud.Service[content.BlogCategory, content.CategoryInput]
	Posts          content.PostService
	Careers        crud.Service[content.Career, content.CareerInput]
	Centers        crud.Service[content.Center, content.CenterInput]
	TeamMembers    crud.Service[content.TeamMember, content.TeamMemberInput]
	Contacts       content.ContactService
	Dashboard      dashboard.Service

	UploadDir string
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service on top of a fresh database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)
	uploadDir := filepath.Join(t.TempDir(), "uploads")

	hasher := auth.NewBcryptHasher(4)
	issuer := auth.NewJWTIssuer(&config.AuthSettings{JWTSecret: TestJWTSecret, TokenTTL: time.Hour})
	denylist, closeDenylist, err := auth.NewDenylist(context.Background(), &config.RedisSettings{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDenylist() })

	mediaConnector, err := connector.NewLocalMediaConnector(uploadDir, "/uploads", log)
	require.NoError(t, err)
	processor := imaging.NewWebPProcessor(&config.UploadSettings{MaxSizeMB: 5, MaxWidth: 128, Quality: 80})
	schemas := schema.NewJSONSchemaValidator()

	s := &TestServices{UploadDir: uploadDir, DBContext: db}
	s.Users, err = NewUserService(db.Users, hasher, log)
	require.NoError(t, err)
	s.Auth, err = NewAuthService(db.Users, hasher, issuer, denylist, log)
	require.NoError(t, err)
	s.Addresses, err = NewAddressService(db.Addresses, log)
	require.NoError(t, err)
	s.PublicServices, err = NewPublicServiceService(db.Services, schemas, log)
	require.NoError(t, err)
	s.Applications, err = NewApplicationService(db.Applications, db.Services, schemas, log)
	require.NoError(t, err)
	s.PaymentMethods, err = NewPaymentMethodService(db.PaymentMethods, log)
	require.NoError(t, err)
	s.Recharges, err = NewRechargeService(db.Recharges, db.PaymentMethods, log)
	require.NoError(t, err)
	s.Media, err = NewMediaService(db.Media, mediaConnector, processor, log)
	require.NoError(t, err)
	s.Categories, err = NewBlogCategoryService(db.Categories, db.Posts, log)
	require.NoError(t, err)
	s.Posts, err = NewBlogPostService(db.Posts, db.Categories, log)
	require.NoError(t, err)
	s.Careers, err = NewCareerService(db.Careers, log)
	require.NoError(t, err)
	s.Centers, err = NewCenterService(db.Centers, log)
	require.NoError(t, err)
	s.TeamMembers, err = NewTeamMemberService(db.TeamMembers, log)
	require.NoError(t, err)
	s.Contacts, err = NewContactService(db.Contacts, log)
	require.NoError(t, err)
	s.Dashboard, err = NewDashboardService(db.Users, db.Applications, db.Recharges)
	require.NoError(t, err)

	return s
}

// CreateAgent registers an entrepreneur and returns it with its claims
func CreateAgent(t *testing.T, s *TestServices, phone string) (*users.User, users.Claims) {
	t.Helper()

	u, err := s.Users.Create(context.Background(), &users.CreateInput{
		Name:     "Agent " + phone[len(phone)-4:],
		Phone:    phone,
		Password: "secret123",
	})
	require.NoError(t, err)
	return u, users.Claims{UserID: u.ID, Role: u.Role}
}

// AdminClaims returns claims of an administrator that does not exist in the
// database.
func AdminClaims() users.Claims {
	return users.Claims{UserID: 9999, Role: users.RoleAdmin}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

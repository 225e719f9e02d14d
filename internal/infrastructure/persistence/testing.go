//go:build integration
// +build integration

package persistence

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and every repository
type TestContext struct {
	DB             *gorm.DB
	Users          users.Repository
	Addresses      addresses.Repository
	Services       crud.Repository[publicservices.PublicService]
	Applications   applications.Repository
	PaymentMethods payments.MethodRepository
	Recharges      payments.RechargeRepository
	Media          media.Repository
	Categories     content.CategoryRepository
	Posts          content.PostRepository
	Careers        content.CareerRepository
	Centers        content.CenterRepository
	TeamMembers    content.TeamMemberRepository
	Contacts       content.ContactRepository
}

// SetupTestDB opens a migrated database and registers cleanup with t
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanup := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}
	case config.PostgresDbType:
		name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: name,
		}
		cleanup = func() {
			_ = DropDatabase("user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable", name)
		}
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}

	return openTestDB(t, settings, cleanup)
}

// SetupFileTestDB opens a migrated SQLite database in a temporary file. Unlike
// the in-memory database it allows several open connections, so concurrent
// transactions really interleave. Transactions begin IMMEDIATE and wait on a
// busy timeout instead of failing with SQLITE_BUSY.
func SetupFileTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type:         config.SqliteDbType,
		DSN:          filepath.Join(t.TempDir(), "amiuddokta.db") + "?_busy_timeout=10000&_txlock=immediate&_journal_mode=WAL",
		MaxOpenConns: 8,
	}
	return openTestDB(t, settings, func() {})
}

func openTestDB(t *testing.T, settings config.DatabaseSettings, cleanup func()) *TestContext {
	t.Helper()

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "failed to create database connection")
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanup()
	})
	require.NoError(t, AutoMigrate(db))

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.Users, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.Addresses, err = NewGormAddressRepository(db, log)
	require.NoError(t, err)
	tc.Services, err = NewGormPublicServiceRepository(db, log)
	require.NoError(t, err)
	tc.Applications, err = NewGormApplicationRepository(db, log)
	require.NoError(t, err)
	tc.PaymentMethods, err = NewGormPaymentMethodRepository(db, log)
	require.NoError(t, err)
	tc.Recharges, err = NewGormRechargeRepository(db, log)
	require.NoError(t, err)
	tc.Media, err = NewGormMediaRepository(db, log)
	require.NoError(t, err)
	tc.Categories, err = NewGormCategoryRepository(db, log)
	require.NoError(t, err)
	tc.Posts, err = NewGormPostRepository(db, log)
	require.NoError(t, err)
	tc.Careers, err = NewGormCareerRepository(db, log)
	require.NoError(t, err)
	tc.Centers, err = NewGormCenterRepository(db, log)
	require.NoError(t, err)
	tc.TeamMembers, err = NewGormTeamMemberRepository(db, log)
	require.NoError(t, err)
	tc.Contacts, err = NewGormContactRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser stores an entrepreneur with the given phone and balance
func CreateTestUser(t *testing.T, tc *TestContext, phone string, balance float64) *users.User {
	t.Helper()

	u := &users.User{
		Name:         "Test Agent " + phone[len(phone)-4:],
		Phone:        phone,
		PasswordHash: "$2a$04$testhash",
		Role:         users.RoleEntrepreneur,
		Status:       users.StatusActive,
		Balance:      balance,
	}
	require.NoError(t, tc.Users.Create(context.Background(), u))
	return u
}

// CreateTestService stores an active public service
func CreateTestService(t *testing.T, tc *TestContext, title string, price float64) *publicservices.PublicService {
	t.Helper()

	s := &publicservices.PublicService{
		Title:       title,
		Description: title + " service",
		Price:       price,
		Status:      publicservices.StatusActive,
	}
	require.NoError(t, tc.Services.Create(context.Background(), s))
	return s
}

// CreateTestPaymentMethod stores an active payment method
func CreateTestPaymentMethod(t *testing.T, tc *TestContext, name string) *payments.PaymentMethod {
	t.Helper()

	m := &payments.PaymentMethod{
		Name:          name,
		AccountNumber: "01711000000",
		AccountType:   payments.AccountPersonal,
		Status:        payments.MethodActive,
	}
	require.NoError(t, tc.PaymentMethods.Create(context.Background(), m))
	return m
}

//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

// result unpacks a (value, error) mock return where the value may be nil.
func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

// listResult unpacks an (items, meta, error) mock return.
func listResult[T any](args mock.Arguments) ([]*T, pagination.Meta, error) {
	var items []*T
	if args.Get(0) != nil {
		items = args.Get(0).([]*T)
	}
	return items, args.Get(1).(pagination.Meta), args.Error(2)
}

// MockCRUDService is a mock implementation of crud.Service
type MockCRUDService[T any, I crud.Input[T]] struct {
	mock.Mock
}

func (m *MockCRUDService[T, I]) Create(ctx context.Context, input I) (*T, error) {
	return result[*T](m.Called(ctx, input))
}

func (m *MockCRUDService[T, I]) GetByID(ctx context.Context, id uint) (*T, error) {
	return result[*T](m.Called(ctx, id))
}

func (m *MockCRUDService[T, I]) List(ctx context.Context, query *crud.ListQuery) ([]*T, pagination.Meta, error) {
	return listResult[T](m.Called(ctx, query))
}

func (m *MockCRUDService[T, I]) Update(ctx context.Context, id uint, input I) (*T, error) {
	return result[*T](m.Called(ctx, id, input))
}

func (m *MockCRUDService[T, I]) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserService is a mock implementation of users.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input *users.CreateInput) (*users.User, error) {
	return result[*users.User](m.Called(ctx, input))
}

func (m *MockUserService) GetByID(ctx context.Context, actor users.Claims, id uint) (*users.User, error) {
	return result[*users.User](m.Called(ctx, actor, id))
}

func (m *MockUserService) List(ctx context.Context, query *crud.ListQuery) ([]*users.User, pagination.Meta, error) {
	return listResult[users.User](m.Called(ctx, query))
}

func (m *MockUserService) Update(ctx context.Context, id uint, input *users.UpdateInput) (*users.User, error) {
	return result[*users.User](m.Called(ctx, id, input))
}

func (m *MockUserService) DeleteByID(ctx context.Context, actor users.Claims, id uint) error {
	return m.Called(ctx, actor, id).Error(0)
}

// MockAuthService is a mock implementation of users.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input *users.LoginInput) (*users.Session, error) {
	return result[*users.Session](m.Called(ctx, input))
}

func (m *MockAuthService) Logout(ctx context.Context, claims users.Claims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	return result[*users.Claims](m.Called(ctx, token))
}

func (m *MockAuthService) Me(ctx context.Context, claims users.Claims) (*users.User, error) {
	return result[*users.User](m.Called(ctx, claims))
}

func (m *MockAuthService) ChangePassword(ctx context.Context, claims users.Claims, input *users.ChangePasswordInput) error {
	return m.Called(ctx, claims, input).Error(0)
}

// MockApplicationService is a mock implementation of applications.Service
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Create(ctx context.Context, actor users.Claims, input *applications.CreateInput) (*applications.Application, error) {
	return result[*applications.Application](m.Called(ctx, actor, input))
}

func (m *MockApplicationService) GetByID(ctx context.Context, actor users.Claims, id uint) (*applications.Application, error) {
	return result[*applications.Application](m.Called(ctx, actor, id))
}

func (m *MockApplicationService) List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*applications.Application, pagination.Meta, error) {
	return listResult[applications.Application](m.Called(ctx, actor, query))
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, id uint, input *applications.StatusInput) (*applications.Application, error) {
	return result[*applications.Application](m.Called(ctx, id, input))
}

func (m *MockApplicationService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockRechargeService is a mock implementation of payments.RechargeService
type MockRechargeService struct {
	mock.Mock
}

func (m *MockRechargeService) Create(ctx context.Context, actor users.Claims, input *payments.RechargeInput) (*payments.RechargeRequest, error) {
	return result[*payments.RechargeRequest](m.Called(ctx, actor, input))
}

func (m *MockRechargeService) GetByID(ctx context.Context, actor users.Claims, id uint) (*payments.RechargeRequest, error) {
	return result[*payments.RechargeRequest](m.Called(ctx, actor, id))
}

func (m *MockRechargeService) List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*payments.RechargeRequest, pagination.Meta, error) {
	return listResult[payments.RechargeRequest](m.Called(ctx, actor, query))
}

func (m *MockRechargeService) Review(ctx context.Context, id uint, input *payments.RechargeStatusInput) (*payments.RechargeRequest, error) {
	return result[*payments.RechargeRequest](m.Called(ctx, id, input))
}

func (m *MockRechargeService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockMediaService is a mock implementation of media.Service
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, form *multipart.Form, uploadedBy uint) ([]*media.Media, error) {
	return result[[]*media.Media](m.Called(ctx, form, uploadedBy))
}

func (m *MockMediaService) GetByID(ctx context.Context, id uint) (*media.Media, error) {
	return result[*media.Media](m.Called(ctx, id))
}

func (m *MockMediaService) List(ctx context.Context, query *crud.ListQuery) ([]*media.Media, pagination.Meta, error) {
	return listResult[media.Media](m.Called(ctx, query))
}

func (m *MockMediaService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockPostService is a mock implementation of content.PostService
type MockPostService struct {
	MockCRUDService[content.BlogPost, content.PostInput]
}

func (m *MockPostService) CreateAuthored(ctx context.Context, authorID uint, input content.PostInput) (*content.BlogPost, error) {
	return result[*content.BlogPost](m.Called(ctx, authorID, input))
}

func (m *MockPostService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*content.BlogPost, error) {
	return result[*content.BlogPost](m.Called(ctx, slug, includeDrafts))
}

// MockContactService is a mock implementation of content.ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, input *content.ContactInput) (*content.ContactForm, error) {
	return result[*content.ContactForm](m.Called(ctx, input))
}

func (m *MockContactService) Open(ctx context.Context, id uint) (*content.ContactForm, error) {
	return result[*content.ContactForm](m.Called(ctx, id))
}

func (m *MockContactService) List(ctx context.Context, query *crud.ListQuery) ([]*content.ContactForm, pagination.Meta, error) {
	return listResult[content.ContactForm](m.Called(ctx, query))
}

func (m *MockContactService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockDashboardService is a mock implementation of dashboard.Service
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	return result[*dashboard.Summary](m.Called(ctx))
}

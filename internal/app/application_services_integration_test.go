//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const birthFormSchema = `{"type":"object","required":["child_name"],"properties":{"child_name":{"type":"string"}}}`

// fundAgent tops up the agent's balance through an approved recharge.
func fundAgent(t *testing.T, s *TestServices, claims users.Claims, amount float64, txID string) {
	t.Helper()
	ctx := context.Background()

	method, err := s.PaymentMethods.Create(ctx, payments.MethodInput{
		Name:          Ptr("bKash " + txID),
		AccountNumber: Ptr("01700000000"),
		AccountType:   Ptr(payments.AccountPersonal),
	})
	require.NoError(t, err)

	request, err := s.Recharges.Create(ctx, claims, &payments.RechargeInput{
		PaymentMethodID: method.ID,
		Amount:          amount,
		SenderNumber:    "01711111111",
		TransactionID:   txID,
	})
	require.NoError(t, err)

	_, err = s.Recharges.Review(ctx, request.ID, &payments.RechargeStatusInput{Status: payments.RechargeApproved})
	require.NoError(t, err)
}

func createBirthService(t *testing.T, s *TestServices, price float64) *publicservices.PublicService {
	t.Helper()
	service, err := s.PublicServices.Create(context.Background(), publicservices.Input{
		Title:       Ptr("Birth registration"),
		Description: Ptr("Online birth registration"),
		Price:       Ptr(price),
		FormSchema:  Ptr(birthFormSchema),
	})
	require.NoError(t, err)
	return service
}

func balanceOf(t *testing.T, s *TestServices, id uint) float64 {
	t.Helper()
	u, err := s.Users.GetByID(context.Background(), AdminClaims(), id)
	require.NoError(t, err)
	return u.Balance
}

func TestApplicationService_FileAndReject(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	agent, claims := CreateAgent(t, s, "01711111111")
	fundAgent(t, s, claims, 300, "TX-FUND-1")
	service := createBirthService(t, s, 120)

	app, err := s.Applications.Create(ctx, claims, &applications.CreateInput{
		ServiceID:     service.ID,
		ApplicantName: "Ayesha Siddika",
		Data:          json.RawMessage(`{"child_name":"Ayesha"}`),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{8}-[0-9A-F]{8}$`), app.TrackingNo)
	assert.Equal(t, applications.StatusPending, app.Status)
	assert.InDelta(t, 120, app.Charge, 0.001)
	assert.InDelta(t, 180, balanceOf(t, s, agent.ID), 0.001)

	_, err = s.Applications.UpdateStatus(ctx, app.ID, &applications.StatusInput{Status: applications.StatusCompleted})
	assert.ErrorIs(t, err, apperr.ErrInvalidStatusTransition)

	moved, err := s.Applications.UpdateStatus(ctx, app.ID, &applications.StatusInput{Status: applications.StatusProcessing})
	require.NoError(t, err)
	assert.Equal(t, applications.StatusProcessing, moved.Status)

	rejected, err := s.Applications.UpdateStatus(ctx, app.ID, &applications.StatusInput{Status: applications.StatusRejected, Note: Ptr("blurred scan")})
	require.NoError(t, err)
	assert.Equal(t, applications.StatusRejected, rejected.Status)
	assert.InDelta(t, 300, balanceOf(t, s, agent.ID), 0.001)
}

func TestApplicationService_CreateRules(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, claims := CreateAgent(t, s, "01711111111")
	service := createBirthService(t, s, 50)

	_, err := s.Applications.Create(ctx, claims, &applications.CreateInput{
		ServiceID: service.ID, ApplicantName: "Ayesha", Data: json.RawMessage(`{"child_name":"Ayesha"}`),
	})
	assert.ErrorIs(t, err, apperr.ErrInsufficientBalance)

	fundAgent(t, s, claims, 100, "TX-FUND-2")

	_, err = s.Applications.Create(ctx, claims, &applications.CreateInput{
		ServiceID: service.ID, ApplicantName: "Ayesha", Data: json.RawMessage(`{"other":1}`),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.Applications.Create(ctx, claims, &applications.CreateInput{ServiceID: 999, ApplicantName: "Ayesha"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.PublicServices.Update(ctx, service.ID, publicservices.Input{Status: Ptr(publicservices.StatusInactive)})
	require.NoError(t, err)
	_, err = s.Applications.Create(ctx, claims, &applications.CreateInput{
		ServiceID: service.ID, ApplicantName: "Ayesha", Data: json.RawMessage(`{"child_name":"Ayesha"}`),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestApplicationService_Scoping(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, first := CreateAgent(t, s, "01711111111")
	_, second := CreateAgent(t, s, "01722222222")
	fundAgent(t, s, first, 100, "TX-FUND-3")
	service := createBirthService(t, s, 10)

	app, err := s.Applications.Create(ctx, first, &applications.CreateInput{
		ServiceID: service.ID, ApplicantName: "Karim", Data: json.RawMessage(`{"child_name":"Karim"}`),
	})
	require.NoError(t, err)

	_, err = s.Applications.GetByID(ctx, second, app.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, meta, err := s.Applications.List(ctx, second, crud.NewListQuery(pagination.Options{}))
	require.NoError(t, err)
	assert.Zero(t, meta.Total)

	items, meta, err := s.Applications.List(ctx, AdminClaims(), crud.NewListQuery(pagination.Options{SearchTerm: app.TrackingNo}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, app.ID, items[0].ID)
}

func TestPublicService_RejectsInvalidSchema(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)

	_, err := s.PublicServices.Create(context.Background(), publicservices.Input{
		Title:       Ptr("Death registration"),
		Description: Ptr("Online death registration"),
		Price:       Ptr(50.0),
		FormSchema:  Ptr(`{"type": 5}`),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRechargeService_Rules(t *testing.T) {
	s := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	agent, claims := CreateAgent(t, s, "01711111111")
	_, other := CreateAgent(t, s, "01722222222")

	method, err := s.PaymentMethods.Create(ctx, payments.MethodInput{
		Name: Ptr("Nagad"), AccountNumber: Ptr("01800000000"), AccountType: Ptr(payments.AccountAgent),
		Status: Ptr(payments.MethodInactive),
	})
	require.NoError(t, err)

	input := &payments.RechargeInput{PaymentMethodID: method.ID, Amount: 100, SenderNumber: "01711111111", TransactionID: "TX-9"}
	_, err = s.Recharges.Create(ctx, claims, input)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.PaymentMethods.Update(ctx, method.ID, payments.MethodInput{Status: Ptr(payments.MethodActive)})
	require.NoError(t, err)

	request, err := s.Recharges.Create(ctx, claims, input)
	require.NoError(t, err)
	_, err = s.Recharges.Create(ctx, claims, input)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = s.Recharges.GetByID(ctx, other, request.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	rejected, err := s.Recharges.Review(ctx, request.ID, &payments.RechargeStatusInput{Status: payments.RechargeRejected})
	require.NoError(t, err)
	assert.Equal(t, payments.RechargeRejected, rejected.Status)
	assert.Zero(t, balanceOf(t, s, agent.ID))

	assert.ErrorIs(t, s.Recharges.DeleteByID(ctx, request.ID), apperr.ErrInvalidStatusTransition)

	summary, err := s.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.UsersByRole["entrepreneur"])
	assert.Zero(t, summary.PendingRecharges)
	assert.Zero(t, summary.ApprovedRechargeTotal)
}

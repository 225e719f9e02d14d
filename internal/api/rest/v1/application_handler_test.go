//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplicationHandler_Create(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.applications.On("Create", mock.Anything, agentClaims, mock.MatchedBy(func(in *applications.CreateInput) bool {
		return in.ServiceID == 3 && in.ApplicantName == "Ayesha" && string(in.Data) == `{"child_name":"Ayesha"}`
	})).Return(&applications.Application{ID: 11, TrackingNo: "20260101-ABCDEF12"}, nil).Once()
	api.applications.On("Create", mock.Anything, agentClaims, mock.Anything).Return(nil, apperr.ErrInsufficientBalance).Once()

	body := `{"service_id":3,"applicant_name":"Ayesha","data":{"child_name":"Ayesha"}}`
	w := api.json(http.MethodPost, "/api/v1/applications", agentToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "20260101-ABCDEF12")

	w = api.json(http.MethodPost, "/api/v1/applications", agentToken, `{"service_id":4,"applicant_name":"Karim"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient balance", decodeEnvelope(t, w).Message)
	api.applications.AssertExpectations(t)
}

func TestApplicationHandler_ListAndStatus(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.applications.On("List", mock.Anything, agentClaims, mock.MatchedBy(func(q *crud.ListQuery) bool {
		return q.Filters["status"] == "pending" && q.Filters["service_id"] == uint(3)
	})).Return([]*applications.Application{}, pagination.Meta{Page: 1, Limit: 10}, nil)
	api.applications.On("UpdateStatus", mock.Anything, uint(11), &applications.StatusInput{Status: applications.StatusCompleted}).
		Return(nil, apperr.ErrInvalidStatusTransition)

	w := api.json(http.MethodGet, "/api/v1/applications?status=pending&service_id=3", agentToken, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.json(http.MethodPatch, "/api/v1/applications/11/status", agentToken, `{"status":"completed"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.json(http.MethodPatch, "/api/v1/applications/11/status", adminToken, `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid status transition", decodeEnvelope(t, w).Message)
	api.applications.AssertExpectations(t)
}

func TestRechargeHandler(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.recharges.On("Create", mock.Anything, agentClaims, &payments.RechargeInput{
		PaymentMethodID: 1, Amount: 500, SenderNumber: "01711111111", TransactionID: "TX1",
	}).Return(&payments.RechargeRequest{ID: 3, Status: payments.RechargePending}, nil)
	api.recharges.On("Review", mock.Anything, uint(3), &payments.RechargeStatusInput{Status: payments.RechargeApproved}).
		Return(&payments.RechargeRequest{ID: 3, Status: payments.RechargeApproved}, nil)
	api.recharges.On("DeleteByID", mock.Anything, uint(3)).Return(apperr.ErrInvalidStatusTransition)

	body := `{"payment_method_id":1,"amount":500,"sender_number":"01711111111","transaction_id":"TX1"}`
	assert.Equal(t, http.StatusCreated, api.json(http.MethodPost, "/api/v1/recharges", agentToken, body).Code)

	w := api.json(http.MethodPatch, "/api/v1/recharges/3/status", adminToken, `{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recharge request approved", decodeEnvelope(t, w).Message)

	assert.Equal(t, http.StatusBadRequest, api.json(http.MethodDelete, "/api/v1/recharges/3", adminToken, "").Code)
	api.recharges.AssertExpectations(t)
}

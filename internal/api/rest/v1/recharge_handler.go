package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

var rechargeFilters = []filter{textFilter("status"), idFilter("payment_method_id"), idFilter("user_id")}

// RechargeHandler defines the recharge request endpoints
type RechargeHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Review(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type rechargeHandler struct {
	rechargeService payments.RechargeService
}

// NewRechargeHandler creates a new RechargeHandler
func NewRechargeHandler(rechargeService payments.RechargeService) RechargeHandler {
	return &rechargeHandler{rechargeService: rechargeService}
}

func (handler *rechargeHandler) Create(ctx *gin.Context) {
	var input payments.RechargeInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	request, err := handler.rechargeService.Create(ctx.Request.Context(), mustClaims(ctx), &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "Recharge request submitted successfully", request)
}

func (handler *rechargeHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, rechargeFilters, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := handler.rechargeService.List(ctx.Request.Context(), mustClaims(ctx), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "Recharge request list retrieved successfully", items, meta)
}

func (handler *rechargeHandler) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	request, err := handler.rechargeService.GetByID(ctx.Request.Context(), mustClaims(ctx), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Recharge request retrieved successfully", request)
}

// Review approves or rejects a pending request
func (handler *rechargeHandler) Review(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	var input payments.RechargeStatusInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	request, err := handler.rechargeService.Review(ctx.Request.Context(), id, &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Recharge request "+string(request.Status), request)
}

func (handler *rechargeHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.rechargeService.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Recharge request deleted successfully", nil)
}

package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"

	"github.com/gin-gonic/gin"
)

var applicationFilters = []filter{textFilter("status"), idFilter("service_id"), idFilter("user_id")}

// ApplicationHandler defines the application endpoints
type ApplicationHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type applicationHandler struct {
	applicationService applications.Service
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService applications.Service) ApplicationHandler {
	return &applicationHandler{applicationService: applicationService}
}

// Create files an application and charges the caller
func (handler *applicationHandler) Create(ctx *gin.Context) {
	var input applications.CreateInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	app, err := handler.applicationService.Create(ctx.Request.Context(), mustClaims(ctx), &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "Application submitted successfully", app)
}

// List returns the caller's applications, or every application for admins
func (handler *applicationHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, applicationFilters, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := handler.applicationService.List(ctx.Request.Context(), mustClaims(ctx), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "Application list retrieved successfully", items, meta)
}

// GetByID returns an application owned by the caller
func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	app, err := handler.applicationService.GetByID(ctx.Request.Context(), mustClaims(ctx), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Application retrieved successfully", app)
}

// UpdateStatus moves an application through its workflow
func (handler *applicationHandler) UpdateStatus(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	var input applications.StatusInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	app, err := handler.applicationService.UpdateStatus(ctx.Request.Context(), id, &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Application status updated successfully", app)
}

// DeleteByID deletes an application
func (handler *applicationHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.applicationService.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Application deleted successfully", nil)
}

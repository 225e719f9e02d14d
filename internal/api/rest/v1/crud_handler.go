package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"

	"github.com/gin-gonic/gin"
)

// CRUDHandler serves the five standard routes of a resource.
type CRUDHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// crudHandler adapts a crud.Service to HTTP.
type crudHandler[T any, I crud.Input[T]] struct {
	service     crud.Service[T, I]
	name        string
	filters     []filter
	defaultSort *sortDefault
}

// NewCRUDHandler creates a handler for a resource. name is used in response
// messages, e.g. "Career".
func NewCRUDHandler[T any, I crud.Input[T]](service crud.Service[T, I], name string, filters ...filter) CRUDHandler {
	return &crudHandler[T, I]{service: service, name: name, filters: filters}
}

func newSortedCRUDHandler[T any, I crud.Input[T]](service crud.Service[T, I], name string, def sortDefault, filters ...filter) CRUDHandler {
	return &crudHandler[T, I]{service: service, name: name, filters: filters, defaultSort: &def}
}

func (h *crudHandler[T, I]) Create(ctx *gin.Context) {
	var input I
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	entity, err := h.service.Create(ctx.Request.Context(), input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, h.name+" created successfully", entity)
}

func (h *crudHandler[T, I]) List(ctx *gin.Context) {
	query, err := listQuery(ctx, h.filters, h.defaultSort)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := h.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, h.name+" list retrieved successfully", items, meta)
}

func (h *crudHandler[T, I]) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	entity, err := h.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, h.name+" retrieved successfully", entity)
}

func (h *crudHandler[T, I]) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	var input I
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	entity, err := h.service.Update(ctx.Request.Context(), id, input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, h.name+" updated successfully", entity)
}

func (h *crudHandler[T, I]) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.service.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, h.name+" deleted successfully", nil)
}

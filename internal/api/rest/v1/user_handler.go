package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"

	"github.com/gin-gonic/gin"
)

var userFilters = []filter{textFilter("role"), textFilter("status"), idFilter("division_id"), idFilter("district_id")}

// userHandler serves /users. Reads are scoped by the caller's claims.
type userHandler struct {
	userService users.Service
}

// NewUserHandler creates the handler of the user endpoints
func NewUserHandler(userService users.Service) CRUDHandler {
	return &userHandler{userService: userService}
}

func (handler *userHandler) Create(ctx *gin.Context) {
	var input users.CreateInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	user, err := handler.userService.Create(ctx.Request.Context(), &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "User created successfully", user)
}

func (handler *userHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, userFilters, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := handler.userService.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "User list retrieved successfully", items, meta)
}

func (handler *userHandler) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	user, err := handler.userService.GetByID(ctx.Request.Context(), mustClaims(ctx), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "User retrieved successfully", user)
}

func (handler *userHandler) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	var input users.UpdateInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	user, err := handler.userService.Update(ctx.Request.Context(), id, &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "User updated successfully", user)
}

func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.userService.DeleteByID(ctx.Request.Context(), mustClaims(ctx), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "User deleted successfully", nil)
}

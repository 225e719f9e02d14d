package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the authentication endpoints
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges phone and password for a bearer token
func (handler *authHandler) Login(ctx *gin.Context) {
	var input users.LoginInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	session, err := handler.authService.Login(ctx.Request.Context(), &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Logged in successfully", session)
}

// Logout revokes the token of the current request
func (handler *authHandler) Logout(ctx *gin.Context) {
	if err := handler.authService.Logout(ctx.Request.Context(), mustClaims(ctx)); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the profile of the caller
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.authService.Me(ctx.Request.Context(), mustClaims(ctx))
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Profile retrieved successfully", user)
}

// ChangePassword replaces the caller's password
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	var input users.ChangePasswordInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.authService.ChangePassword(ctx.Request.Context(), mustClaims(ctx), &input); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Password changed successfully", nil)
}

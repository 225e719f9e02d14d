package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// SystemHandler serves the dashboard summary and the health probe
type SystemHandler interface {
	Summary(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type systemHandler struct {
	dashboardService dashboard.Service
	health           HealthCheck
}

// NewSystemHandler creates a new SystemHandler. A nil health check always
// reports healthy.
func NewSystemHandler(dashboardService dashboard.Service, health HealthCheck) SystemHandler {
	return &systemHandler{dashboardService: dashboardService, health: health}
}

// Summary returns the admin dashboard counters
func (handler *systemHandler) Summary(ctx *gin.Context) {
	summary, err := handler.dashboardService.Summary(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

// Health answers 503 when the database cannot be reached
func (handler *systemHandler) Health(ctx *gin.Context) {
	if handler.health != nil {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()
		if err := handler.health(checkCtx); err != nil {
			_ = ctx.Error(err)
			response.Fail(ctx, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	response.OK(ctx, http.StatusOK, "OK", gin.H{"status": "up"})
}

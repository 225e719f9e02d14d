package middleware

import (
	"net/http"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error("panic recovered", "method", ctx.Request.Method, "path", ctx.Request.URL.Path, "panic", recovered)
		response.Fail(ctx, http.StatusInternalServerError, response.InternalErrorMessage)
	})
}

// RequestLogger logs one line per request. Server errors attached with
// ctx.Error are included.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		args := []any{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", ctx.ClientIP(),
		}
		if claims, ok := ClaimsFrom(ctx); ok {
			args = append(args, "user_id", claims.UserID)
		}
		if len(ctx.Errors) > 0 {
			args = append(args, "errors", ctx.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request failed", args...)
		case status >= http.StatusBadRequest:
			log.Warn("request rejected", args...)
		default:
			log.Info("request handled", args...)
		}
	}
}

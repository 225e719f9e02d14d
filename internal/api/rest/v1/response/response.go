// Package response writes the JSON envelope every API endpoint answers with:
//
//	{"success": bool, "message": string, "data": any, "meta": pagination.Meta}
package response

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    any              `json:"data,omitempty"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

// InternalErrorMessage replaces the message of unexpected errors so internal
// details do not leak to clients.
const InternalErrorMessage = "internal server error"

// OK writes a successful envelope with the given status.
func OK(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// List writes a page of items with its meta.
func List(ctx *gin.Context, message string, data any, meta pagination.Meta) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: &meta})
}

// Fail writes a failed envelope with an explicit status and message.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

// Error maps err to its status code and writes a failed envelope.
func Error(ctx *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = InternalErrorMessage
	}
	Fail(ctx, status, message)
}

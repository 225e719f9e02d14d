package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// ContactHandler defines the contact form endpoints
type ContactHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	Open(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type contactHandler struct {
	contactService content.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService content.ContactService) ContactHandler {
	return &contactHandler{contactService: contactService}
}

// Submit stores a message from the public contact page
func (handler *contactHandler) Submit(ctx *gin.Context) {
	var input content.ContactInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	msg, err := handler.contactService.Submit(ctx.Request.Context(), &input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "Message sent successfully", msg)
}

func (handler *contactHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, []filter{textFilter("status")}, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := handler.contactService.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "Contact message list retrieved successfully", items, meta)
}

// Open returns a message and marks it read
func (handler *contactHandler) Open(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	msg, err := handler.contactService.Open(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Contact message retrieved successfully", msg)
}

func (handler *contactHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.contactService.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Contact message deleted successfully", nil)
}

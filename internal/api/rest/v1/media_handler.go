package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler defines the media endpoints
type MediaHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type mediaHandler struct {
	mediaService media.Service
	maxBodySize  int64
}

// NewMediaHandler creates a new MediaHandler. Request bodies larger than
// maxBodySize bytes are rejected before parsing.
func NewMediaHandler(mediaService media.Service, maxBodySize int64) MediaHandler {
	return &mediaHandler{mediaService: mediaService, maxBodySize: maxBodySize}
}

// Upload converts every image of the "files" field to WebP and stores it
func (handler *mediaHandler) Upload(ctx *gin.Context) {
	if handler.maxBodySize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxBodySize)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	stored, err := handler.mediaService.Upload(ctx.Request.Context(), form, mustClaims(ctx).UserID)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "Media uploaded successfully", stored)
}

func (handler *mediaHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, []filter{idFilter("uploaded_by")}, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	items, meta, err := handler.mediaService.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "Media list retrieved successfully", items, meta)
}

func (handler *mediaHandler) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	m, err := handler.mediaService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Media retrieved successfully", m)
}

func (handler *mediaHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.mediaService.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Media deleted successfully", nil)
}

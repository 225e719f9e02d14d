package v1

import (
	"net/http"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/response"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/content"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// BlogPostHandler defines the blog post endpoints. Anonymous callers and
// entrepreneurs only see published posts.
type BlogPostHandler interface {
	CRUDHandler
	GetBySlug(ctx *gin.Context)
}

type blogPostHandler struct {
	postService content.PostService
}

// NewBlogPostHandler creates a new BlogPostHandler
func NewBlogPostHandler(postService content.PostService) BlogPostHandler {
	return &blogPostHandler{postService: postService}
}

// Create stores a post authored by the caller
func (handler *blogPostHandler) Create(ctx *gin.Context) {
	var input content.PostInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	post, err := handler.postService.CreateAuthored(ctx.Request.Context(), mustClaims(ctx).UserID, input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusCreated, "Blog post created successfully", post)
}

func (handler *blogPostHandler) List(ctx *gin.Context) {
	query, err := listQuery(ctx, []filter{textFilter("status"), idFilter("category_id"), idFilter("author_id")}, nil)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	if !isAdmin(ctx) {
		query.Filter("status", string(content.PostPublished))
	}

	items, meta, err := handler.postService.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, "Blog post list retrieved successfully", items, meta)
}

func (handler *blogPostHandler) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	post, err := handler.postService.GetByID(ctx.Request.Context(), id)
	if err == nil && !post.IsPublished() && !isAdmin(ctx) {
		err = apperr.NotFound("blog post", id)
	}
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Blog post retrieved successfully", post)
}

// GetBySlug returns a post by its URL slug
func (handler *blogPostHandler) GetBySlug(ctx *gin.Context) {
	post, err := handler.postService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"), isAdmin(ctx))
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Blog post retrieved successfully", post)
}

func (handler *blogPostHandler) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	var input content.PostInput
	if err := bindJSON(ctx, &input); err != nil {
		response.Error(ctx, err)
		return
	}

	post, err := handler.postService.Update(ctx.Request.Context(), id, input)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Blog post updated successfully", post)
}

func (handler *blogPostHandler) DeleteByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := handler.postService.DeleteByID(ctx.Request.Context(), id); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, http.StatusOK, "Blog post deleted successfully", nil)
}

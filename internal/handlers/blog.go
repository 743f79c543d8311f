package handlers

import (
	"errors"
	"net/http"

	"github.com/codeyousef/portfolio-sub001/internal/repository"
	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// BlogHandler handles blog post HTTP requests.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new BlogHandler instance.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPublished godoc
// @Summary List published posts
// @Description Paginated published posts, newest publish date first. Page is 1-based.
// @Tags blog
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} service.BlogPage
// @Router /blog [get]
func (h *BlogHandler) ListPublished(c *gin.Context) {
	page, size := parsePageQuery(c)
	result, err := h.blogService.ListPublished(c.Request.Context(), page, size)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByTag godoc
// @Summary List published posts by tag
// @Description Paginated published posts with an exact (case-sensitive) tag match.
// @Tags blog
// @Produce json
// @Param tag path string true "Tag"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} service.BlogPage
// @Router /blog/tag/{tag} [get]
func (h *BlogHandler) ListByTag(c *gin.Context) {
	page, size := parsePageQuery(c)
	result, err := h.blogService.ListByTag(c.Request.Context(), c.Param("tag"), page, size)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBySlug godoc
// @Summary Get a post by slug
// @Description Returns a publicly visible post; drafts and future-dated posts are hidden.
// @Tags blog
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} service.BlogPostResponse
// @Failure 404 {object} map[string]string
// @Router /blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load post")
		return
	}
	if post == nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListAll godoc
// @Summary List all posts including drafts
// @Tags blog
// @Produce json
// @Success 200 {array} service.BlogPostResponse
// @Router /admin/blog [get]
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.blogService.ListAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body service.BlogPostInput true "Post fields"
// @Success 201 {object} service.BlogPostResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /blog [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var input service.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), input)
	if err != nil {
		h.respondBlogError(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update godoc
// @Summary Update a post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param request body service.BlogPostInput true "Post fields"
// @Success 200 {object} service.BlogPostResponse
// @Failure 404 {object} map[string]string
// @Router /blog/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondBlogError(c, err, "failed to update post")
		return
	}
	if post == nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

// TogglePublished godoc
// @Summary Toggle the published flag
// @Tags blog
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} service.BlogPostResponse
// @Failure 404 {object} map[string]string
// @Router /blog/{id}/toggle-published [post]
func (h *BlogHandler) TogglePublished(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.blogService.TogglePublished(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to toggle post")
		return
	}
	if post == nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags blog
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.blogService.Delete(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete post")
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *BlogHandler) respondBlogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidSlug):
		RespondError(c, http.StatusBadRequest, "title produced no usable slug")
	case errors.Is(err, repository.ErrDuplicateSlug):
		RespondError(c, http.StatusConflict, "slug already in use")
	default:
		LogAndRespondError(c, http.StatusInternalServerError, err, fallback)
	}
}

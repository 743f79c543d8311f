package handlers

import (
	"net/http"

	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project HTTP requests.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler instance.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListFeatured godoc
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse
// @Router /projects/featured [get]
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.projectService.ListFeatured(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load project")
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body service.ProjectInput true "Project fields"
// @Success 201 {object} service.ProjectResponse
// @Failure 400 {object} map[string]string
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var input service.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param request body service.ProjectInput true "Project fields"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update project")
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// ToggleFeatured godoc
// @Summary Toggle the featured flag
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/toggle-featured [post]
func (h *ProjectHandler) ToggleFeatured(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.projectService.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to toggle project")
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.projectService.Delete(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete project")
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

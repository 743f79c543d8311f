package handlers

import (
	"net/http"

	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// ServiceHandler handles offered-service HTTP requests.
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler creates a new ServiceHandler instance.
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List godoc
// @Summary List services in display order
// @Description Sorted ascending by display order; ties keep creation order.
// @Tags services
// @Produce json
// @Success 200 {array} service.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.ListOrderedByDisplay(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListFeatured godoc
// @Summary List featured services
// @Tags services
// @Produce json
// @Success 200 {array} service.ServiceResponse
// @Router /services/featured [get]
func (h *ServiceHandler) ListFeatured(c *gin.Context) {
	services, err := h.catalog.ListFeatured(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get godoc
// @Summary Get a service
// @Tags services
// @Produce json
// @Param id path int true "Service id"
// @Success 200 {object} service.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load service")
		return
	}
	if svc == nil {
		RespondError(c, http.StatusNotFound, "service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Create godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param request body service.ServiceInput true "Service fields"
// @Success 201 {object} service.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var input service.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := h.catalog.Create(c.Request.Context(), input)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// Update godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service id"
// @Param request body service.ServiceInput true "Service fields"
// @Success 200 {object} service.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := h.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update service")
		return
	}
	if svc == nil {
		RespondError(c, http.StatusNotFound, "service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ToggleFeatured godoc
// @Summary Toggle the featured flag
// @Tags services
// @Produce json
// @Param id path int true "Service id"
// @Success 200 {object} service.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id}/toggle-featured [post]
func (h *ServiceHandler) ToggleFeatured(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.catalog.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to toggle service")
		return
	}
	if svc == nil {
		RespondError(c, http.StatusNotFound, "service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete godoc
// @Summary Delete a service
// @Tags services
// @Produce json
// @Param id path int true "Service id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete service")
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

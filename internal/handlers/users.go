package handlers

import (
	"errors"
	"net/http"

	"github.com/codeyousef/portfolio-sub001/internal/repository"
	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user administration HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.CreateUserInput true "User fields"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			RespondError(c, http.StatusBadRequest, "invalid role")
		case errors.Is(err, repository.ErrDuplicateUsername):
			RespondError(c, http.StatusConflict, "username already taken")
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create user")
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a user
// @Description Username is immutable; password is replaced only when supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body service.UpdateUserInput true "User fields"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			RespondError(c, http.StatusBadRequest, "invalid role")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update user")
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

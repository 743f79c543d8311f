// Package handlers contains HTTP request handlers for the portfolio backend.
package handlers

import (
	"errors"
	"net/http"

	"github.com/codeyousef/portfolio-sub001/internal/middleware"
	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary User login
// @Description Authenticate user and establish a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 302 {string} string "redirect to login with error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Back to the login entry point with an error flag;
			// never say which half of the credential was wrong.
			c.Redirect(http.StatusFound, middleware.LoginPath+"?error=1")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		return
	}

	h.cookies.SetSession(c, response.Token, expirySeconds(response.ExpiresIn))
	c.JSON(http.StatusOK, response)
}

// LoginPage godoc
// @Summary Login entry point
// @Description Target of guard redirects. Tells API clients where to post credentials and echoes the error flag set after a failed attempt.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	body := gin.H{"login_url": "/api/v1/auth/login"}
	if c.Query("error") != "" {
		body["error"] = "invalid credentials"
	}
	c.JSON(http.StatusOK, body)
}

// Logout godoc
// @Summary User logout
// @Description Revoke the session and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.cookies.GetSession(c)
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil &&
			!errors.Is(err, service.ErrInvalidSession) {
			LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
			return
		}
	}

	h.cookies.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// @Summary Current identity
// @Description Return the authenticated principal and role
// @Tags auth
// @Produce json
// @Success 200 {object} middleware.Identity
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": identity.Username,
		"role":     identity.Role,
	})
}

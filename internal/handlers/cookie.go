package handlers

import (
	"net/http"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// CookieHelper manages the session cookie.
type CookieHelper struct {
	config CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config CookieConfig) *CookieHelper {
	return &CookieHelper{config: config}
}

// SetSession writes the session cookie for the whole site path.
func (h *CookieHelper) SetSession(c *gin.Context, token string, expiry time.Duration) {
	h.setCookie(c, token, int(expiry.Seconds()))
}

// ClearSession expires the session cookie immediately.
func (h *CookieHelper) ClearSession(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSession retrieves the session token from the cookie, or "".
func (h *CookieHelper) GetSession(c *gin.Context) string {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		middleware.SessionCookie,
		value,
		maxAge,
		"/",
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for the session cookie
	)
}

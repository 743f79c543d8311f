// Package middleware provides HTTP middleware for the portfolio backend.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the name of the http-only session cookie.
	SessionCookie = "portfolio_session"
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"

	identityKey = "identity"
)

// Identity is the resolved caller placed in the request context by the
// access guard.
type Identity struct {
	Username string
	Role     models.Role
}

// SessionResolver maps a session token to its user. Implemented by the
// auth service.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*models.User, error)
}

// publicExact are paths that never require a session.
var publicExact = map[string]bool{
	"/":                  true,
	"/health":            true,
	"/metrics":           true,
	LoginPath:            true,
	"/api/v1/auth/login": true,
}

// publicPrefixes are path prefixes that never require a session
// regardless of method (static assets and well-known).
var publicPrefixes = []string{
	"/css/",
	"/js/",
	"/images/",
	"/models/",
	"/uploads/",
	"/.well-known/",
}

// publicReadPrefixes are path prefixes that are public for reads only.
var publicReadPrefixes = []string{
	"/api/v1/blog",
	"/api/v1/projects",
	"/api/v1/services",
}

func isPublic(method, path string) bool {
	if publicExact[path] {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if method == http.MethodGet || method == http.MethodHead {
		for _, prefix := range publicReadPrefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}

// Guard enforces authentication before every non-public request. A
// request without a resolvable active session is redirected to the login
// entry point and the protected handler never runs. On success the
// resolved identity is attached to the context for role gating.
func Guard(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublic(c.Request.Method, c.Request.URL.Path) {
			// Attach the identity when a session happens to be
			// present so public handlers can personalize.
			if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
				if user, err := resolver.ResolveSession(c.Request.Context(), token); err == nil {
					c.Set(identityKey, Identity{Username: user.Username, Role: user.Role})
				}
			}
			c.Next()
			return
		}

		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		user, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{Username: user.Username, Role: user.Role})
		c.Next()
	}
}

// RequireRole rejects requests whose identity does not carry at least the
// given role. It must run after Guard.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.Role.AtLeast(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Guard, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

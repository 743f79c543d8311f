package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/gin-gonic/gin"
)

type stubResolver struct {
	user *models.User
	err  error
}

func (s *stubResolver) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func setupGuardedRouter(resolver SessionResolver, handlerHit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Guard(resolver))

	record := func(c *gin.Context) {
		*handlerHit = true
		c.Status(http.StatusOK)
	}
	router.GET("/admin/dashboard", record)
	router.GET("/api/v1/blog", record)
	router.POST("/api/v1/blog", record)
	router.GET("/api/v1/auth/me", record)
	router.GET("/css/site.css", record)
	return router
}

func TestGuardRedirectsProtectedPathWithoutCookie(t *testing.T) {
	handlerHit := false
	router := setupGuardedRouter(&stubResolver{err: errors.New("no session")}, &handlerHit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if location := w.Header().Get("Location"); location != LoginPath {
		t.Errorf("redirect location = %q, want %q", location, LoginPath)
	}
	if handlerHit {
		t.Error("protected handler must not run without a session")
	}
}

func TestGuardRedirectsWhenSessionUnresolvable(t *testing.T) {
	handlerHit := false
	router := setupGuardedRouter(&stubResolver{err: errors.New("revoked")}, &handlerHit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if handlerHit {
		t.Error("protected handler must not run with an unresolvable session")
	}
}

func TestGuardAllowsPublicPathsWithoutSession(t *testing.T) {
	paths := []string{"/api/v1/blog", "/css/site.css"}

	for _, path := range paths {
		handlerHit := false
		router := setupGuardedRouter(&stubResolver{err: errors.New("no session")}, &handlerHit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
		if !handlerHit {
			t.Errorf("GET %s should reach its handler", path)
		}
	}
}

func TestGuardBlogWriteIsProtected(t *testing.T) {
	handlerHit := false
	router := setupGuardedRouter(&stubResolver{err: errors.New("no session")}, &handlerHit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if handlerHit {
		t.Error("blog writes must require a session")
	}
}

func TestGuardAttachesIdentity(t *testing.T) {
	resolver := &stubResolver{user: &models.User{Username: "alice", Role: models.RoleAdmin}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Guard(resolver))

	var identity Identity
	var ok bool
	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		identity, ok = IdentityFrom(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good-token"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !ok {
		t.Fatal("identity should be attached to the context")
	}
	if identity.Username != "alice" || identity.Role != models.RoleAdmin {
		t.Errorf("identity = %+v, want alice/ADMIN", identity)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *Identity
		required   models.Role
		wantStatus int
	}{
		{
			name:       "admin passes admin gate",
			identity:   &Identity{Username: "root", Role: models.RoleAdmin},
			required:   models.RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "contributor passes contributor gate",
			identity:   &Identity{Username: "ed", Role: models.RoleContributor},
			required:   models.RoleContributor,
			wantStatus: http.StatusOK,
		},
		{
			name:       "user blocked from contributor gate",
			identity:   &Identity{Username: "visitor", Role: models.RoleUser},
			required:   models.RoleContributor,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "contributor blocked from admin gate",
			identity:   &Identity{Username: "ed", Role: models.RoleContributor},
			required:   models.RoleAdmin,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing identity blocked",
			identity:   nil,
			required:   models.RoleContributor,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			if tt.identity != nil {
				identity := *tt.identity
				router.Use(func(c *gin.Context) {
					c.Set(identityKey, identity)
				})
			}
			router.POST("/mutate", RequireRole(tt.required), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

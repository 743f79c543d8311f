package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

func TestCookieHelperSetAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	helper := NewCookieHelper(CookieConfig{Secure: true, SameSite: http.SameSiteLaxMode})

	router := gin.New()
	router.GET("/set", func(c *gin.Context) {
		helper.SetSession(c, "abc123", time.Hour)
		c.Status(http.StatusOK)
	})
	router.GET("/get", func(c *gin.Context) {
		c.String(http.StatusOK, helper.GetSession(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != middleware.SessionCookie {
		t.Errorf("cookie name = %q, want %q", cookie.Name, middleware.SessionCookie)
	}
	if cookie.Value != "abc123" {
		t.Errorf("cookie value = %q, want %q", cookie.Value, "abc123")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be http-only")
	}
	if !cookie.Secure {
		t.Error("session cookie should be secure when configured")
	}
	if cookie.MaxAge != 3600 {
		t.Errorf("cookie max-age = %d, want 3600", cookie.MaxAge)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "abc123"})
	router.ServeHTTP(w, req)
	if w.Body.String() != "abc123" {
		t.Errorf("GetSession() = %q, want %q", w.Body.String(), "abc123")
	}
}

func TestCookieHelperGetMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	helper := NewCookieHelper(CookieConfig{})

	router := gin.New()
	router.GET("/get", func(c *gin.Context) {
		c.String(http.StatusOK, helper.GetSession(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get", nil))
	if w.Body.String() != "" {
		t.Errorf("GetSession() without cookie = %q, want empty", w.Body.String())
	}
}

func TestCookieHelperClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	helper := NewCookieHelper(CookieConfig{})

	router := gin.New()
	router.GET("/clear", func(c *gin.Context) {
		helper.ClearSession(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clear", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Errorf("clear cookie = value %q max-age %d, want expired", cookies[0].Value, cookies[0].MaxAge)
	}
}

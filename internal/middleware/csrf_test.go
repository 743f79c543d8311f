package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCSRF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	allowed := []string{
		"https://localhost:8443",
		"https://example.com",
	}

	tests := []struct {
		name       string
		method     string
		origin     string
		referer    string
		wantStatus int
	}{
		{
			name:       "GET passes without headers",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "HEAD passes without headers",
			method:     http.MethodHead,
			wantStatus: http.StatusOK,
		},
		{
			name:       "OPTIONS passes without headers",
			method:     http.MethodOptions,
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with allowed origin passes",
			method:     http.MethodPost,
			origin:     "https://example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with trailing slash origin passes",
			method:     http.MethodPost,
			origin:     "https://example.com/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with uppercase origin passes",
			method:     http.MethodPost,
			origin:     "HTTPS://EXAMPLE.COM",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with foreign origin blocked",
			method:     http.MethodPost,
			origin:     "https://evil.test",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "POST falls back to allowed referer",
			method:     http.MethodPost,
			referer:    "https://example.com/admin/blog",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with foreign referer blocked",
			method:     http.MethodPost,
			referer:    "https://evil.test/page",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "POST without origin or referer blocked",
			method:     http.MethodPost,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "DELETE with foreign origin blocked",
			method:     http.MethodDelete,
			origin:     "https://evil.test",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CSRF(allowed))
			router.Any("/target", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/target", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedirectMiddlewareMapsRetiredPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RedirectMiddleware())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		path     string
		expected string
	}{
		{"/upload", "/"},
		{"/upload/form", "/"},
		{"/orders", "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusMovedPermanently {
				t.Fatalf("status = %d, expected 301", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tt.expected {
				t.Errorf("redirect = %q, expected %q", loc, tt.expected)
			}
		})
	}
}

func TestRedirectMiddlewareLeavesCurrentPathsAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RedirectMiddleware())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", w.Code)
	}
}

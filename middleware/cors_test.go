// api/middleware/cors_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func corsRouter(extraOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(CORSMiddleware(extraOrigin))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

// TestCORSAllowedOrigins tests that extension and local-dev origins are
// echoed back with credentials enabled.
func TestCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{name: "chrome extension", origin: "chrome-extension://abcdefghijklmnop", allowed: true},
		{name: "localhost with port", origin: "http://localhost:5173", allowed: true},
		{name: "loopback with port", origin: "http://127.0.0.1:3000", allowed: true},
		{name: "https localhost not matched", origin: "https://localhost:5173", allowed: false},
		{name: "external origin rejected", origin: "https://evil.example.com", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := corsRouter("")

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

// TestCORSExtraOrigin tests the configured deployed-frontend origin.
func TestCORSExtraOrigin(t *testing.T) {
	r := corsRouter("https://focusmate.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://focusmate.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://focusmate.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSPreflight tests that OPTIONS requests short-circuit with 204.
func TestCORSPreflight(t *testing.T) {
	r := corsRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

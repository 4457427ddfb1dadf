// api/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Origin prefixes the browser extension and local dev frontends call from.
// The port (or extension id) varies, so these are matched as prefixes.
var allowedOriginPrefixes = []string{
	"chrome-extension://",
	"http://localhost:",
	"http://127.0.0.1:",
}

// CORSMiddleware provides a Gin middleware function for handling
// Cross-Origin Resource Sharing. extraOrigin optionally allows one deployed
// frontend on top of the built-in prefixes; set it via configuration.
func CORSMiddleware(extraOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Echo the caller's origin rather than "*" so credentialed
		// requests stay allowed.
		if originAllowed(origin, extraOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Handle preflight requests (OPTIONS method) before any handler runs.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(origin, extraOrigin string) bool {
	if origin == "" {
		return false
	}
	if extraOrigin != "" && origin == extraOrigin {
		return true
	}
	for _, prefix := range allowedOriginPrefixes {
		if strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

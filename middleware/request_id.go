package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the generated id back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a fresh identifier, exposed both as a
// response header and in the Gin context so log lines can be correlated
// with the request that produced them.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

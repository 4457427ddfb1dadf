package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequestID tests that every response carries a fresh, valid request id
// and that handlers can read it from the context.
func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())

	var seenID string
	r.GET("/ping", func(c *gin.Context) {
		seenID = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	headerID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seenID)

	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEqual(t, headerID, w2.Header().Get(RequestIDHeader))
}

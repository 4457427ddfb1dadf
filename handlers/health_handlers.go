package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers the index probe with service identity and the route list.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "FocusMate API is running!",
		"version":   "1.0.0",
		"endpoints": []string{"/health", "/activity", "/analysis/today"},
	})
}

// HealthCheck reports process liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

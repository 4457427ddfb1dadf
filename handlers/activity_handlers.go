// api/handlers/activity_handlers.go
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"focusmate/api/models"
	"focusmate/api/store"

	"github.com/gin-gonic/gin"
)

type ActivityHandlers struct {
	Store *store.ActivityStore
}

func NewActivityHandlers(s *store.ActivityStore) *ActivityHandlers {
	return &ActivityHandlers{
		Store: s,
	}
}

// TrackActivity records one (url, duration, user) event. The extension sends
// parameters as query values, not a JSON body, so they are read off the URL.
func (h *ActivityHandlers) TrackActivity(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":     "error",
			"message":    "url query parameter is required",
			"productive": nil,
		})
		return
	}

	durationParam := c.Query("duration")
	if durationParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":     "error",
			"message":    "duration query parameter is required (seconds)",
			"productive": nil,
		})
		return
	}
	duration, err := strconv.ParseInt(durationParam, 10, 64)
	if err != nil || duration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":     "error",
			"message":    "duration must be a non-negative integer number of seconds",
			"productive": nil,
		})
		return
	}

	event := models.ActivityEvent{
		URL:      rawURL,
		Duration: duration,
		User:     c.DefaultQuery("user", "guest"),
	}

	result, err := h.Store.RecordEvent(event)
	if err != nil {
		log.Printf("Error recording activity event (request %s): %v", c.GetString("request_id"), err)
		c.JSON(http.StatusOK, gin.H{
			"status":     "error",
			"message":    err.Error(),
			"productive": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"productive":      result.Class.Bool(),
		"host":            result.Host,
		"duration_logged": duration,
	})
}

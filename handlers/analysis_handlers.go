// api/handlers/analysis_handlers.go
package handlers

import (
	"net/http"

	"focusmate/api/analytics"

	"github.com/gin-gonic/gin"
)

type AnalysisHandlers struct {
	Engine *analytics.Engine
}

func NewAnalysisHandlers(engine *analytics.Engine) *AnalysisHandlers {
	return &AnalysisHandlers{
		Engine: engine,
	}
}

// GetTodayAnalysis returns the current day's productivity report for one
// user. The engine never fails outward, a report always renders, so this is
// always HTTP 200.
func (h *AnalysisHandlers) GetTodayAnalysis(c *gin.Context) {
	user := c.DefaultQuery("user", "guest")
	c.JSON(http.StatusOK, h.Engine.TodayReport(user))
}

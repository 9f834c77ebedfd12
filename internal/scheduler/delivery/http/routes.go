package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduling-advisor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.GET("/recommendations/:id", h.Recommendations)
	rg.PATCH("/schedule/:id", h.Schedule)
	rg.POST("/schedule/:id/slots/:index", h.ScheduleSlot)
	rg.PATCH("/start-task/:id", h.StartTask)
	rg.GET("/tasks/:id", h.Task)

	format := rg.Group("/format")
	{
		format.GET("/duration/:minutes", h.FormatDuration)
		format.GET("/day/:day", h.FormatDay)
		format.GET("/time-of-day/:bucket", h.FormatTimeOfDay)
	}
}

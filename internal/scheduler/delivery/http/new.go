package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/pkg/datemath"
	"task-scheduling-advisor/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Recommendations(c *gin.Context)
	Schedule(c *gin.Context)
	ScheduleSlot(c *gin.Context)
	StartTask(c *gin.Context)
	Task(c *gin.Context)
	FormatDuration(c *gin.Context)
	FormatDay(c *gin.Context)
	FormatTimeOfDay(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     scheduler.UseCase
	parser *datemath.Parser
	now    func() time.Time
}

// New creates a new HTTP handler for the scheduler domain.
// parser interprets wall-clock and relative scheduled_time values.
func New(l log.Logger, uc scheduler.UseCase, parser *datemath.Parser) Handler {
	if parser == nil {
		parser = datemath.NewParserInLocation(time.UTC)
	}
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		now:    time.Now,
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-scheduling-advisor/internal/middleware"
	schedulerHTTP "task-scheduling-advisor/internal/scheduler/delivery/http"
)

// setupSchedulerDomain registers /api/v1/scheduler routes.
// The use case is built by the caller so the CLI and the server share wiring.
func (srv HTTPServer) setupSchedulerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := schedulerHTTP.New(srv.l, srv.schedulerUC, srv.dateParser)
	schedulerHTTP.RegisterRoutes(api.Group("/scheduler"), h, mw)

	srv.l.Infof(ctx, "Scheduler domain registered")
	return nil
}

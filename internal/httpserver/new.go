package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/pkg/datemath"
	"task-scheduling-advisor/pkg/log"
	"task-scheduling-advisor/pkg/throttle"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	limiter     *throttle.Keyed
	readiness   func(ctx context.Context) error

	// Scheduler domain
	schedulerUC scheduler.UseCase
	dateParser  *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RequestsPerMin limits each client IP; 0 disables limiting.
	RequestsPerMin int

	// Readiness backs /ready. Nil means always ready.
	Readiness func(ctx context.Context) error

	// Scheduler domain
	SchedulerUseCase scheduler.UseCase
	DateParser       *datemath.Parser
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		schedulerUC: cfg.SchedulerUseCase,
		dateParser:  cfg.DateParser,
		readiness:   cfg.Readiness,
	}
	if cfg.RequestsPerMin > 0 {
		srv.limiter = throttle.NewKeyed(cfg.RequestsPerMin)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulerUC == nil {
		return errors.New("scheduler use case is required")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-scheduling-advisor/config"
	_ "task-scheduling-advisor/docs" // Swagger docs
	"task-scheduling-advisor/internal/bootstrap"
	"task-scheduling-advisor/internal/httpserver"
)

// @title       Task Scheduling Advisor API
// @description Confidence-gated scheduling recommendations and optimistic task scheduling over the task backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Scheduling Advisor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Scheduler domain
	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize scheduler: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		Readiness:        app.Backend.Ping,
		SchedulerUseCase: app.UseCase,
		DateParser:       app.Parser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

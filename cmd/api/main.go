package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-master/config"
	_ "task-master/docs" // Swagger docs
	"task-master/internal/bootstrap"
	"task-master/internal/httpserver"
	"task-master/internal/middleware"
	"task-master/pkg/log"
)

// @title       Task Master API
// @description Task list with agenda views and a voice command interpreter.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Master...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Timezone)

	// 3. Task domain
	domain, err := bootstrap.NewTaskDomain(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task domain: ", err)
		return
	}
	defer func() {
		if err := domain.Close(); err != nil {
			logger.Warnf(ctx, "Closing task store: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		TaskUseCase: domain.UseCase,
		Location:    domain.Location,
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

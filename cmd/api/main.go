package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"mom-planner/config"
	_ "mom-planner/docs" // Swagger docs
	"mom-planner/internal/httpserver"
	"mom-planner/internal/middleware"
	"mom-planner/internal/plan/repository/memory"
	"mom-planner/internal/plan/usecase"
	"mom-planner/internal/reminder"
	"mom-planner/pkg/llmprovider"
	"mom-planner/pkg/log"
	"mom-planner/pkg/notify"
)

// @title       MOM Daily Planner API
// @description Turns a to-do list or syllabus into a time-blocked daily plan with reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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

	logger.Info(ctx, "Starting MOM planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model provider
	provider, err := llmprovider.New(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("failed to initialize model provider: %w", err)
	}
	logger.Infof(ctx, "Model: %s via %s", provider.Model(), provider.Name())

	// 4. Notifications
	gate, err := notify.NewPermissionGate(cfg.Notification)
	if err != nil {
		return err
	}
	notifier := notify.New(cfg.Notification, cfg.Telegram, logger)
	logger.Infof(ctx, "Notifications: permission=%s sinks=%d", gate.State(), len(notifier))

	// 5. Plan domain
	repo := memory.New(memory.Options{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	}, logger)
	planUC := usecase.New(repo, provider, gate, notifier, usecase.Config{
		Timeout:           cfg.Planner.Timeout,
		Temperature:       cfg.Planner.Temperature,
		Icon:              cfg.Notification.Icon,
		MaxUploadBytes:    cfg.Intake.MaxUploadBytes(),
		ReminderTolerance: cfg.Reminder.Tolerance,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		PlanUseCase:     planUC,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		MaxUploadBytes:  cfg.Intake.MaxUploadBytes(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 7. Reminders
	var ticker *reminder.Ticker
	if cfg.Reminder.Enabled {
		loc, err := cfg.Reminder.Location()
		if err != nil {
			return err
		}
		ticker = reminder.NewTicker(planUC, cfg.Reminder.Interval, loc, logger)
	} else {
		logger.Info(ctx, "Timed reminders disabled")
	}

	// 8. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if ticker != nil {
		g.Go(func() error {
			return ticker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

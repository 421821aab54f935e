package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"mom-planner/config"
	"mom-planner/internal/cli"
	"mom-planner/internal/plan/repository/memory"
	"mom-planner/internal/plan/usecase"
	"mom-planner/pkg/llmprovider"
	"mom-planner/pkg/log"
	"mom-planner/pkg/notify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Connect: connect,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// connect loads configuration and wires the planner for model-backed commands.
func connect(ctx context.Context, confirm func(context.Context) (bool, error)) (*cli.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.NewNop()
	if os.Getenv("MOM_DEBUG") != "" {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         log.ModeDevelopment,
			Encoding:     log.EncodingConsole,
			ColorEnabled: isatty.IsTerminal(os.Stdout.Fd()),
		})
	}

	provider, err := llmprovider.New(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}

	var gate notify.PermissionGate
	if confirm != nil {
		gate = notify.NewPromptGate(confirm)
	} else if gate, err = notify.NewPermissionGate(cfg.Notification); err != nil {
		return nil, err
	}

	loc, err := cfg.Reminder.Location()
	if err != nil {
		return nil, err
	}

	repo := memory.New(memory.Options{MaxSessions: 1, TTL: cfg.Session.TTL}, logger)
	uc := usecase.New(repo, provider, gate, notify.New(cfg.Notification, cfg.Telegram, logger), usecase.Config{
		Timeout:           cfg.Planner.Timeout,
		Temperature:       cfg.Planner.Temperature,
		Icon:              cfg.Notification.Icon,
		MaxUploadBytes:    cfg.Intake.MaxUploadBytes(),
		ReminderTolerance: cfg.Reminder.Tolerance,
	}, logger)

	return &cli.Deps{
		UseCase:          uc,
		ReminderInterval: cfg.Reminder.Interval,
		Location:         loc,
		Logger:           logger,
	}, nil
}

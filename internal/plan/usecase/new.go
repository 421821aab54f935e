package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"mom-planner/internal/plan/repository"
	"mom-planner/pkg/gemini"
	"mom-planner/pkg/llmprovider"
	"mom-planner/pkg/log"
	"mom-planner/pkg/notify"
)

const defaultTimeout = 45 * time.Second

// Config carries the tunables of the plan use case.
type Config struct {
	Timeout           time.Duration
	Temperature       float64
	Icon              string
	MaxUploadBytes    int64
	ReminderTolerance time.Duration
}

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	repo     repository.Repository
	provider llmprovider.Provider
	gate     notify.PermissionGate
	notifier notify.Notifier
	validate *validator.Validate
	cfg      Config
	l        log.Logger
}

// New creates a new plan UseCase implementation.
func New(
	repo repository.Repository,
	provider llmprovider.Provider,
	gate notify.PermissionGate,
	notifier notify.Notifier,
	cfg Config,
	l log.Logger,
) *implUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = gemini.DefaultTemperature
	}
	if cfg.ReminderTolerance <= 0 {
		cfg.ReminderTolerance = time.Minute
	}
	return &implUseCase{
		repo:     repo,
		provider: provider,
		gate:     gate,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfg:      cfg,
		l:        l,
	}
}

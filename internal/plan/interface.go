package plan

import (
	"context"
	"time"

	"mom-planner/internal/model"
	"mom-planner/pkg/notify"
)

// Planner turns free text into a validated plan with one model call.
type Planner interface {
	GeneratePlan(ctx context.Context, userInput, specifications string, tone model.Tone) ([]model.PlanItem, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Planner

	// Sessions
	CreateSession(ctx context.Context) (SessionOutput, error)
	GetSession(ctx context.Context, id string) (SessionOutput, error)

	// Input
	SetInput(ctx context.Context, input SetInputInput) (SessionOutput, error)
	UploadPDF(ctx context.Context, input UploadPDFInput) (SessionOutput, error)

	// Generation
	Generate(ctx context.Context, input GenerateInput) (SessionOutput, error)
	CancelGeneration(ctx context.Context, id string) (SessionOutput, error)

	// Board edits
	UpdateDueDate(ctx context.Context, input UpdateDueDateInput) (SessionOutput, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (SessionOutput, error)

	// Notifications
	NotifyItem(ctx context.Context, input NotifyItemInput) (NotifyOutput, error)
	SetReminders(ctx context.Context, input SetRemindersInput) (SessionOutput, error)
	Permission(ctx context.Context) notify.Permission
	RequestPermission(ctx context.Context) (notify.Permission, error)
	RunReminders(ctx context.Context, now time.Time) (int, error)
}

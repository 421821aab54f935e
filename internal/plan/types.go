package plan

import (
	"io"

	"mom-planner/internal/model"
	"mom-planner/pkg/notify"
)

// --- UseCase Inputs ---

type SetInputInput struct {
	SessionID string
	Text      string
}

type UploadPDFInput struct {
	SessionID string
	Filename  string
	File      io.ReaderAt
	Size      int64
}

type GenerateInput struct {
	SessionID      string
	Input          *string
	Specifications string
	Tone           string
}

type UpdateDueDateInput struct {
	SessionID string
	Index     int
	DueDate   string
}

type UpdateStatusInput struct {
	SessionID string
	Index     int
	Status    string
}

type NotifyItemInput struct {
	SessionID string
	Index     int
}

type SetRemindersInput struct {
	SessionID string
	Enabled   bool
}

// --- UseCase Outputs ---

type SessionOutput struct {
	Session    SessionView
	Permission notify.Permission
	// ParseFailed is set by UploadPDF when the file could not be read.
	ParseFailed bool
}

type NotifyOutput struct {
	Sent       bool
	Permission notify.Permission
	Item       model.PlanItem
}

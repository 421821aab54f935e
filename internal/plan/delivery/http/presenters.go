package http

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"mom-planner/internal/intake"
	"mom-planner/internal/model"
	"mom-planner/internal/plan"
	"mom-planner/pkg/notify"
	"mom-planner/pkg/response"
)

// --- Request DTOs ---

type setInputReq struct {
	Text string `json:"text"`
}

func (r setInputReq) toInput(id string) plan.SetInputInput {
	return plan.SetInputInput{SessionID: id, Text: r.Text}
}

// ---

type generateReq struct {
	Input          *string `json:"input"`
	Specifications string  `json:"specifications"`
	Tone           string  `json:"tone"`
}

func (r generateReq) toInput(id string) plan.GenerateInput {
	return plan.GenerateInput{
		SessionID:      id,
		Input:          r.Input,
		Specifications: r.Specifications,
		Tone:           r.Tone,
	}
}

// ---

type dueDateReq struct {
	DueDate *string `json:"due_date" binding:"required"`
}

func (r dueDateReq) toInput(id string, index int) plan.UpdateDueDateInput {
	return plan.UpdateDueDateInput{SessionID: id, Index: index, DueDate: *r.DueDate}
}

// ---

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

func (r statusReq) toInput(id string, index int) plan.UpdateStatusInput {
	return plan.UpdateStatusInput{SessionID: id, Index: index, Status: r.Status}
}

// ---

type remindersReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (r remindersReq) toInput(id string) plan.SetRemindersInput {
	return plan.SetRemindersInput{SessionID: id, Enabled: *r.Enabled}
}

// --- Response DTOs ---

type permissionResp struct {
	State   string `json:"state"`
	Tooltip string `json:"tooltip"`
	Enabled bool   `json:"enabled"`
}

func newPermissionResp(p notify.Permission) permissionResp {
	return permissionResp{
		State:   string(p),
		Tooltip: p.Tooltip(),
		Enabled: p != notify.PermissionDenied,
	}
}

type formResp struct {
	Text      string `json:"text"`
	Parsing   bool   `json:"parsing"`
	Loading   bool   `json:"loading"`
	CanSubmit bool   `json:"can_submit"`
}

func newFormResp(f intake.Form) formResp {
	return formResp{
		Text:      f.Text,
		Parsing:   f.Parsing,
		Loading:   f.Loading,
		CanSubmit: f.CanSubmit(),
	}
}

type cardResp struct {
	Index            int    `json:"index"`
	Time             string `json:"time"`
	Task             string `json:"task"`
	Category         string `json:"category"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	Duration         int    `json:"duration"`
	DurationLabel    string `json:"duration_label"`
	DueDate          string `json:"due_date"`
	DueDateDisplay   string `json:"due_date_display"`
	DueStatus        string `json:"due_status,omitempty"`
	Status           string `json:"status"`
	NotificationText string `json:"notification_text"`
	Quote            string `json:"quote"`
}

type planResp struct {
	Header string     `json:"header"`
	Hint   string     `json:"hint,omitempty"`
	Items  []cardResp `json:"items"`
}

func newPlanResp(items []model.PlanItem, now time.Time, locale language.Tag) planResp {
	cards := plan.BuildCards(items, now, locale)
	out := planResp{Items: make([]cardResp, len(cards))}
	if len(cards) == 0 {
		out.Header = plan.EmptyPlanTitle
		out.Hint = plan.EmptyPlanHint
	} else {
		out.Header = plan.PlanHeader
	}
	for i, c := range cards {
		out.Items[i] = cardResp{
			Index:            c.Index,
			Time:             c.Time,
			Task:             c.Task,
			Category:         string(c.Category),
			Icon:             c.Style.Icon,
			Color:            c.Style.Color,
			Duration:         items[i].Duration,
			DurationLabel:    c.Duration,
			DueDate:          c.DueDate,
			DueDateDisplay:   c.DueDateDisplay,
			DueStatus:        c.DueStatus,
			Status:           string(c.Status),
			NotificationText: c.NotificationText,
			Quote:            c.Quote,
		}
	}
	return out
}

type sessionResp struct {
	ID         string            `json:"id"`
	CreatedAt  response.DateTime `json:"created_at"`
	Form       formResp          `json:"form"`
	Error      string            `json:"error,omitempty"`
	Generation string            `json:"generation"`
	Plan       planResp          `json:"plan"`
	Reminders  bool              `json:"reminders"`
	Permission permissionResp    `json:"permission"`
	// PDFUnreadable is set on the upload response when the file could not be
	// read and the form holds the fallback text.
	PDFUnreadable bool `json:"pdf_unreadable,omitempty"`
}

func (h *handler) newSessionResp(out plan.SessionOutput, locale language.Tag) sessionResp {
	s := out.Session
	return sessionResp{
		ID:         s.ID,
		CreatedAt:  response.DateTime(s.CreatedAt),
		Form:       newFormResp(s.Form),
		Error:      s.Error,
		Generation: strconv.FormatUint(uint64(s.Generation), 10),
		Plan:       newPlanResp(s.Items, h.now(), locale),
		Reminders:  s.Watch,
		Permission: newPermissionResp(out.Permission),

		PDFUnreadable: out.ParseFailed,
	}
}

type notifyResp struct {
	Sent       bool           `json:"sent"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Permission permissionResp `json:"permission"`
}

func (h *handler) newNotifyResp(out plan.NotifyOutput) notifyResp {
	return notifyResp{
		Sent:       out.Sent,
		Title:      notify.Title(out.Item.Time),
		Body:       out.Item.NotificationText,
		Permission: newPermissionResp(out.Permission),
	}
}

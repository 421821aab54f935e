package model

import "strings"

// Category classifies a plan item.
type Category string

const (
	CategoryProductivity Category = "Productivity"
	CategoryPhysical     Category = "Physical"
	CategoryMental       Category = "Mental"
)

// Categories lists the closed category set in declaration order.
var Categories = []Category{CategoryProductivity, CategoryPhysical, CategoryMental}

// Normalize folds case and surrounding whitespace onto a known category.
// Unknown values are returned trimmed and unchanged.
func (c Category) Normalize() Category {
	trimmed := strings.TrimSpace(string(c))
	for _, known := range Categories {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return Category(trimmed)
}

// IsValid reports whether c is one of the known categories (exact match).
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// OrDefault returns the normalized category, or Productivity when it is not recognized.
func (c Category) OrDefault() Category {
	n := c.Normalize()
	if !n.IsValid() {
		return CategoryProductivity
	}
	return n
}

// Status is the local progress state of a plan item.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the valid statuses.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, bool) {
	trimmed := strings.TrimSpace(s)
	for _, known := range Statuses {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Tone is the writing style requested for notification texts.
type Tone string

const (
	ToneNeutral Tone = "Neutral & Professional"
	ToneFirm    Tone = "Firm & Motivating"
	ToneGentle  Tone = "Gentle & Encouraging"
)

// Tones lists the tone presets.
var Tones = []Tone{ToneNeutral, ToneFirm, ToneGentle}

// ParseTone matches s case-insensitively against the presets. Blank input
// selects ToneNeutral.
func ParseTone(s string) (Tone, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ToneNeutral, true
	}
	for _, known := range Tones {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}
	return "", false
}

// PlanItem is one scheduled activity of a generated plan.
type PlanItem struct {
	Time             string   `json:"time"`
	Task             string   `json:"task"`
	Category         Category `json:"category"`
	Duration         int      `json:"duration"` // minutes
	NotificationText string   `json:"notificationText"`
	DueDate          string   `json:"dueDate,omitempty"`
	Status           Status   `json:"status"`
}

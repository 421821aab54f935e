package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"mom-planner/internal/model"
	"mom-planner/internal/plan"
)

var (
	errNotJSON  = errors.New("response is not valid JSON")
	errNotArray = errors.New("response is not a JSON array")
)

var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// planItemSchema mirrors the declared response schema.
type planItemSchema struct {
	Time             string   `json:"time" validate:"required"`
	Task             string   `json:"task" validate:"required"`
	Category         string   `json:"category" validate:"required,oneof=Productivity Physical Mental"`
	Duration         *float64 `json:"duration" validate:"required,gt=0"`
	NotificationText string   `json:"notificationText" validate:"required"`
}

// parsePlan validates the raw model text against the plan schema before
// converting it. Any failure is a GenerationError.
func (uc *implUseCase) parsePlan(raw string) ([]model.PlanItem, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if !json.Valid([]byte(text)) {
		return nil, plan.NewGenerationError("decode", errNotJSON)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil || elems == nil {
		return nil, plan.NewGenerationError("decode", errNotArray)
	}

	items := make([]model.PlanItem, 0, len(elems))
	for i, elem := range elems {
		item, err := uc.parsePlanItem(elem)
		if err != nil {
			return nil, plan.NewGenerationError("validate", fmt.Errorf("item %d: %w", i, err))
		}
		items = append(items, item)
	}
	return items, nil
}

func (uc *implUseCase) parsePlanItem(elem json.RawMessage) (model.PlanItem, error) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.PlanItem{}, errors.New("not an object")
	}

	var s planItemSchema
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return model.PlanItem{}, err
	}

	s.Time = strings.TrimSpace(s.Time)
	s.Task = strings.TrimSpace(s.Task)
	s.NotificationText = strings.TrimSpace(s.NotificationText)
	s.Category = string(model.Category(s.Category).Normalize())

	if err := uc.validate.Struct(s); err != nil {
		return model.PlanItem{}, err
	}

	d := *s.Duration
	if d != math.Trunc(d) || d > math.MaxInt32 {
		return model.PlanItem{}, fmt.Errorf("duration %v is not a whole number of minutes", d)
	}

	return model.PlanItem{
		Time:             s.Time,
		Task:             s.Task,
		Category:         model.Category(s.Category),
		Duration:         int(d),
		NotificationText: s.NotificationText,
		Status:           model.StatusNotStarted,
	}, nil
}

// stripCodeFence unwraps a response that is entirely one markdown code block.
func stripCodeFence(text string) string {
	if m := fencePattern.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	return text
}

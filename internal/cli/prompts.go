package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"mom-planner/internal/cli/formatter"
	"mom-planner/internal/model"
	"mom-planner/internal/plan"
)

func momHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorEmerald)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func toneOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(model.Tones))
	for _, t := range model.Tones {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}
	return opts
}

// inputForm collects the task text, extra constraints and tone.
func inputForm(text, specs, tone *string) *huh.Form {
	if *tone == "" {
		*tone = string(model.ToneNeutral)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What do you need to get done today?").
				Placeholder("e.g., Finish calculus homework, start history essay, go for a run...").
				Value(text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("%s", plan.EmptyInputMessage)
					}
					return nil
				}),
			huh.NewInput().
				Title("Specifications (optional)").
				Placeholder("e.g., I have class from 1-3 PM, I want to finish by 9 PM").
				Value(specs),
			huh.NewSelect[string]().
				Title("MOM's tone").
				Options(toneOptions()...).
				Value(tone),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false)
}

// confirmNotifications asks once whether MOM may send notifications.
func confirmNotifications(ctx context.Context) (bool, error) {
	ok := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow MOM to send you notifications?").
				Affirmative("Allow").
				Negative("Block").
				Value(&ok),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false).RunWithContext(ctx)
	return ok, err
}

const (
	actionDueDate = "due"
	actionStatus  = "status"
	actionNotify  = "notify"
	actionDone    = "done"
)

func actionForm(action *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Set a due date", actionDueDate),
					huh.NewOption("Update a status", actionStatus),
					huh.NewOption("Send a reminder now", actionNotify),
					huh.NewOption("Done", actionDone),
				).
				Value(action),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false)
}

func itemForm(cards []plan.Card, index *int) *huh.Form {
	opts := make([]huh.Option[int], 0, len(cards))
	for _, c := range cards {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", c.Time, c.Task), c.Index))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which task?").
				Options(opts...).
				Value(index),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false)
}

func dueDateForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Due date (blank for TBD)").
				Placeholder("2025-10-25").
				Value(value),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false)
}

func statusForm(value *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(model.Statuses))
	for _, s := range model.Statuses {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Status").
				Options(opts...).
				Value(value),
		),
	).WithTheme(momHuhTheme()).WithShowHelp(false)
}

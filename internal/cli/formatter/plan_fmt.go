package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mom-planner/internal/plan"
	"mom-planner/pkg/notify"
)

// FormatPlan renders the plan header and one card per item.
func FormatPlan(cards []plan.Card) string {
	if len(cards) == 0 {
		return FormatEmptyPlan()
	}

	var b strings.Builder
	b.WriteString(Header(plan.PlanHeader))
	b.WriteString("\n\n")
	for i, c := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatCard(c))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEmptyPlan renders the placeholder shown before any plan exists.
func FormatEmptyPlan() string {
	return StyleBold.Render(plan.EmptyPlanTitle) + "\n" + Dim(plan.EmptyPlanHint) + "\n"
}

// FormatCard renders one plan item as a bordered card tinted by category.
func FormatCard(c plan.Card) string {
	color := CategoryColor(c.Style.Color)
	accent := lipgloss.NewStyle().Foreground(color).Bold(true)

	title := fmt.Sprintf("%s  %s", accent.Render(c.Time), StyleBold.Render(c.Task))
	meta := []string{
		fmt.Sprintf("%s %s", c.Style.Icon, accent.Render(string(c.Category))),
		Dim(c.Duration),
		StatusStyle(c.Status).Render(string(c.Status)),
	}

	due := "Due: " + c.DueDateDisplay
	if c.DueStatus != "" {
		due += "  " + DueStyle(c.DueStatus).Render(c.DueStatus)
	}

	body := strings.Join([]string{
		title,
		strings.Join(meta, Dim(" · ")),
		Dim(due),
		StyleItalic.Render(c.Quote),
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	return Dim(fmt.Sprintf("#%d", c.Index+1)) + "\n" + box.Render(body)
}

// FormatPermission renders the notification control hint.
func FormatPermission(p notify.Permission) string {
	style := StyleDim
	if p == notify.PermissionDenied {
		style = StyleRed
	}
	return style.Render("🔔 " + p.Tooltip())
}

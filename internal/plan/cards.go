package plan

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"mom-planner/internal/model"
	"mom-planner/pkg/duedate"
)

const (
	// PlanHeader introduces a non-empty plan.
	PlanHeader = "Here is your personalized plan for today:"
	// EmptyPlanTitle is shown when there is no plan yet.
	EmptyPlanTitle = "Your Plan Will Appear Here"
	// EmptyPlanHint follows EmptyPlanTitle.
	EmptyPlanHint = "Let MOM know what you need to do, and she'll organize your day!"
)

// CategoryStyle is the visual treatment of a category.
type CategoryStyle struct {
	Icon  string
	Color string
}

var categoryStyles = map[model.Category]CategoryStyle{
	model.CategoryProductivity: {Icon: "💻", Color: "sky"},
	model.CategoryPhysical:     {Icon: "⚡", Color: "emerald"},
	model.CategoryMental:       {Icon: "🧠", Color: "amber"},
}

// StyleFor returns the style of c, falling back to Productivity.
func StyleFor(c model.Category) CategoryStyle {
	return categoryStyles[c.OrDefault()]
}

// Card is the display model of one plan item.
type Card struct {
	Index            int
	Time             string
	Task             string
	Category         model.Category
	Style            CategoryStyle
	Duration         string
	DueDate          string
	DueDateDisplay   string
	DueStatus        string
	Status           model.Status
	NotificationText string
	Quote            string
}

// BuildCards renders items for display at now in locale.
func BuildCards(items []model.PlanItem, now time.Time, locale language.Tag) []Card {
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		category := item.Category.OrDefault()
		status := item.Status
		if status == "" {
			status = model.StatusNotStarted
		}
		cards = append(cards, Card{
			Index:            i,
			Time:             item.Time,
			Task:             item.Task,
			Category:         category,
			Style:            StyleFor(category),
			Duration:         fmt.Sprintf("%d min", item.Duration),
			DueDate:          item.DueDate,
			DueDateDisplay:   duedate.FormatDueDateIn(item.DueDate, locale, now.Location()),
			DueStatus:        duedate.DueStatus(item.DueDate, now, locale),
			Status:           status,
			NotificationText: item.NotificationText,
			Quote:            fmt.Sprintf("MOM says: \"%s\"", item.NotificationText),
		})
	}
	return cards
}

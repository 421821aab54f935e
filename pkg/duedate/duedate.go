// Package duedate renders the free-form due dates attached to plan items.
package duedate

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
)

// TBD is shown when no usable due date is set.
const TBD = "TBD"

const secondsPerDay = 24 * 60 * 60

const (
	layoutMonthFirst = "Jan 2, 2006"
	layoutDayFirst   = "2 Jan 2006"
)

// DefaultLocale is used when the caller gives no locale.
var DefaultLocale = language.AmericanEnglish

// monthFirstRegions write dates as "Oct 25, 2025".
var monthFirstRegions = map[string]bool{
	"US": true, "PH": true, "CA": true, "FM": true, "MH": true, "PW": true, "AS": true, "GU": true, "UM": true, "VI": true, "PR": true,
}

// FormatDueDate returns a short absolute date for input, or TBD when input is
// blank or "tbd" in any case. Input that does not parse as a date is returned
// trimmed and otherwise unchanged.
func FormatDueDate(input string, locale language.Tag) string {
	return FormatDueDateIn(input, locale, time.Local)
}

// FormatDueDateIn is FormatDueDate with an explicit location for resolving
// dates that carry no zone.
func FormatDueDateIn(input string, locale language.Tag, loc *time.Location) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || strings.EqualFold(trimmed, TBD) {
		return TBD
	}

	monthFirst := IsMonthFirst(locale)
	t, ok := parse(trimmed, loc, monthFirst)
	if !ok {
		return trimmed
	}

	if monthFirst {
		return t.Format(layoutMonthFirst)
	}
	return t.Format(layoutDayFirst)
}

// DueStatus derives the badge text comparing input to now at day granularity,
// in now's location. Ambiguous numeric dates are read in the day/month order
// of locale, the same way FormatDueDate reads them. It returns "" when input
// is blank, TBD, or not a date.
func DueStatus(input string, now time.Time, locale language.Tag) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || strings.EqualFold(trimmed, TBD) {
		return ""
	}

	due, ok := parse(trimmed, now.Location(), IsMonthFirst(locale))
	if !ok {
		return ""
	}

	days := DaysBetween(now, due)
	switch {
	case days == 0:
		return "Due today"
	case days < 0:
		return "Overdue"
	case days == 1:
		return "Due in 1 day"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

// DaysBetween counts calendar days from a to b, each taken in its own location.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
	return int(db - da)
}

// IsMonthFirst reports whether the locale writes the month before the day.
func IsMonthFirst(locale language.Tag) bool {
	if locale == language.Und {
		locale = DefaultLocale
	}
	region, _ := locale.Region()
	return monthFirstRegions[region.String()]
}

// ParseLocale picks the preferred tag of an Accept-Language header.
func ParseLocale(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	return tags[0]
}

func parse(s string, loc *time.Location, monthFirst bool) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	// dateparse indexes past the input on some malformed strings.
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	t, err := dateparse.ParseIn(s, loc, dateparse.PreferMonthFirst(monthFirst))
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// Package reminder decides when plan items are due for a reminder and runs
// the periodic check.
package reminder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mom-planner/internal/model"
)

// DefaultTolerance is how long after its start time an item may still fire.
const DefaultTolerance = time.Minute

const dayLayout = "2006-01-02"

var clockLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"}

// Entry is a pending reminder.
type Entry struct {
	Index  int
	Item   model.PlanItem
	FireAt time.Time
	Key    string
}

// Schedule holds the fire times of one plan for the current day, sorted
// ascending. Each item fires at most once per day. It is not safe for
// concurrent use.
type Schedule struct {
	day     string
	pending []Entry
	fired   map[string]struct{}
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{fired: make(map[string]struct{})}
}

// Key is the dedup key of an item on day.
func Key(item model.PlanItem, day time.Time) string {
	return fmt.Sprintf("%s|%s|%s", item.Task, item.Time, day.Format(dayLayout))
}

// ParseClock resolves a "9:00 AM" style time on the date of day, in day's location.
func ParseClock(s string, day time.Time) (time.Time, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := day.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
	}
	return time.Time{}, fmt.Errorf("reminder: unrecognized time %q", s)
}

// Sync rebuilds the pending list from items for the day of now. Items whose
// time cannot be parsed or that already fired today are skipped.
func (s *Schedule) Sync(items []model.PlanItem, now time.Time) {
	day := now.Format(dayLayout)
	if day != s.day {
		s.day = day
		for k := range s.fired {
			if !strings.HasSuffix(k, "|"+day) {
				delete(s.fired, k)
			}
		}
	}

	s.pending = s.pending[:0]
	for i, item := range items {
		at, err := ParseClock(item.Time, now)
		if err != nil {
			continue
		}
		key := Key(item, now)
		if _, done := s.fired[key]; done {
			continue
		}
		s.pending = append(s.pending, Entry{Index: i, Item: item, FireAt: at, Key: key})
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].FireAt.Before(s.pending[j].FireAt)
	})
}

// Due pops the entries whose fire time lies in (now-tolerance, now] and marks
// them fired.
func (s *Schedule) Due(now time.Time, tolerance time.Duration) []Entry {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var due []Entry
	rest := s.pending[:0]
	for _, e := range s.pending {
		delta := now.Sub(e.FireAt)
		if delta >= 0 && delta < tolerance {
			if _, done := s.fired[e.Key]; !done {
				s.fired[e.Key] = struct{}{}
				due = append(due, e)
			}
			continue
		}
		rest = append(rest, e)
	}
	s.pending = rest
	return due
}

// pendingEntries returns the remaining entries in fire order.
func (s *Schedule) pendingEntries() []Entry {
	out := make([]Entry, len(s.pending))
	copy(out, s.pending)
	return out
}

// Reset drops pending entries. Fired keys are kept so a regenerated plan
// does not repeat today's reminders.
func (s *Schedule) Reset() {
	s.pending = nil
}

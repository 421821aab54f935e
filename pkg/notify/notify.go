// Package notify delivers plan reminders through local and remote sinks.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnsupported is returned when no delivery sink is configured.
var ErrUnsupported = errors.New("notify: no notification sink available")

// Notification is a single reminder.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Multi fans a notification out to every sink. It succeeds when at least
// one sink delivered.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	if len(m) == 0 {
		return ErrUnsupported
	}

	var errs []error
	for _, s := range m {
		if err := s.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(m) {
		return fmt.Errorf("notify: all sinks failed: %w", errors.Join(errs...))
	}
	return nil
}

// Title builds the reminder title for an item starting at itemTime.
func Title(itemTime string) string {
	return fmt.Sprintf("MOM Reminder ⏰ (%s)", itemTime)
}

package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"

	"mom-planner/pkg/log"
)

// Desktop shows native desktop notifications.
type Desktop struct {
	notify func(title, message string, icon any) error
}

// NewDesktop creates a desktop sink. appName labels the notifications where
// the platform supports it.
func NewDesktop(appName string) *Desktop {
	if appName != "" {
		beeep.AppName = appName
	}
	return &Desktop{notify: beeep.Notify}
}

func (d *Desktop) Notify(ctx context.Context, n Notification) error {
	var icon any = ""
	if n.Icon != "" {
		icon = n.Icon
	}
	if err := d.notify(n.Title, n.Body, icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

type messageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Telegram forwards reminders to a Telegram chat.
type Telegram struct {
	bot    messageSender
	chatID int64
}

// NewTelegram creates a Telegram sink for chatID.
func NewTelegram(bot messageSender, chatID int64) *Telegram {
	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) Notify(ctx context.Context, n Notification) error {
	if err := t.bot.SendMessage(ctx, t.chatID, n.Title+"\n"+n.Body); err != nil {
		return fmt.Errorf("telegram notification: %w", err)
	}
	return nil
}

// Log writes reminders to the service log. Useful on headless hosts.
type Log struct {
	l log.Logger
}

// NewLog creates a log sink.
func NewLog(l log.Logger) *Log {
	return &Log{l: l}
}

func (s *Log) Notify(ctx context.Context, n Notification) error {
	s.l.Infof(ctx, "notify.Log: %s: %s", n.Title, n.Body)
	return nil
}

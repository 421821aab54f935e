package notify

import (
	"mom-planner/config"
	"mom-planner/pkg/log"
	"mom-planner/pkg/telegram"
)

// New builds the sinks enabled in cfg. The log sink is used only when no
// other sink is enabled, so delivery failures are not hidden.
func New(cfg config.NotificationConfig, tg config.TelegramConfig, l log.Logger) Multi {
	var sinks Multi
	if cfg.Desktop {
		sinks = append(sinks, NewDesktop(cfg.AppName))
	}
	if tg.BotToken != "" && tg.ChatID != 0 {
		sinks = append(sinks, NewTelegram(telegram.NewBot(tg.BotToken), tg.ChatID))
	}
	if len(sinks) == 0 {
		sinks = append(sinks, NewLog(l))
	}
	return sinks
}

// NewPermissionGate builds the gate from the configured permission.
func NewPermissionGate(cfg config.NotificationConfig) (*Gate, error) {
	p, err := ParsePermission(cfg.Permission)
	if err != nil {
		return nil, err
	}
	return NewGate(p, cfg.GrantOnRequest), nil
}

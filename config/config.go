package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("config: GEMINI_API_KEY is not set")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner
	Gemini       GeminiConfig
	Planner      PlannerConfig
	Session      SessionConfig
	Intake       IntakeConfig
	Notification NotificationConfig
	Telegram     TelegramConfig
	Reminder     ReminderConfig
	RateLimit    RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For. Empty trusts no proxy.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig selects the model and the transport used to reach it.
type GeminiConfig struct {
	APIKey    string
	Model     string
	APIURL    string
	Transport string // "rest" or "sdk"
}

type PlannerConfig struct {
	Timeout     time.Duration
	Temperature float64
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

type IntakeConfig struct {
	MaxUploadMB int
}

// MaxUploadBytes returns the upload bound in bytes.
func (c IntakeConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// NotificationConfig describes the server-side permission gate and the sinks.
type NotificationConfig struct {
	Permission     string // default, granted, denied
	GrantOnRequest bool
	Desktop        bool
	AppName        string
	Icon           string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type ReminderConfig struct {
	Enabled   bool
	Interval  time.Duration
	Tolerance time.Duration
	Timezone  string
}

type RateLimitConfig struct {
	Enabled     bool
	PerMinute   int
	Burst       int
	MaxVisitors int
	VisitorTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Transport = strings.ToLower(viper.GetString("gemini.transport"))

	cfg.Planner.Timeout = viper.GetDuration("planner.timeout")
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")

	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max")

	cfg.Intake.MaxUploadMB = viper.GetInt("intake.max_upload_mb")

	cfg.Notification.Permission = strings.ToLower(viper.GetString("notification.permission"))
	cfg.Notification.GrantOnRequest = viper.GetBool("notification.grant_on_request")
	cfg.Notification.Desktop = viper.GetBool("notification.desktop")
	cfg.Notification.AppName = viper.GetString("notification.app_name")
	cfg.Notification.Icon = viper.GetString("notification.icon")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")

	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Interval = viper.GetDuration("reminder.interval")
	cfg.Reminder.Tolerance = viper.GetDuration("reminder.tolerance")
	cfg.Reminder.Timezone = viper.GetString("reminder.timezone")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxVisitors = viper.GetInt("rate_limit.max_visitors")
	cfg.RateLimit.VisitorTTL = viper.GetDuration("rate_limit.visitor_ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-pro")
	viper.SetDefault("gemini.transport", "rest")
	viper.SetDefault("planner.timeout", "45s")
	viper.SetDefault("planner.temperature", 0.6)

	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("session.max", 1000)
	viper.SetDefault("intake.max_upload_mb", 10)

	viper.SetDefault("notification.permission", "default")
	viper.SetDefault("notification.grant_on_request", true)
	viper.SetDefault("notification.desktop", true)
	viper.SetDefault("notification.app_name", "MOM")
	viper.SetDefault("notification.icon", "")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.interval", "1m")
	viper.SetDefault("reminder.tolerance", "1m")
	viper.SetDefault("reminder.timezone", "Local")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 10)
	viper.SetDefault("rate_limit.burst", 3)
	viper.SetDefault("rate_limit.max_visitors", 10000)
	viper.SetDefault("rate_limit.visitor_ttl", "10m")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch c.Gemini.Transport {
	case "rest", "sdk":
	default:
		return fmt.Errorf("config: unknown gemini.transport %q", c.Gemini.Transport)
	}
	switch c.Notification.Permission {
	case "default", "granted", "denied":
	default:
		return fmt.Errorf("config: unknown notification.permission %q", c.Notification.Permission)
	}
	if c.Planner.Timeout <= 0 {
		return fmt.Errorf("config: planner.timeout must be positive")
	}
	if c.Intake.MaxUploadMB <= 0 {
		return fmt.Errorf("config: intake.max_upload_mb must be positive")
	}
	if c.Reminder.Interval < time.Second {
		return fmt.Errorf("config: reminder.interval must be at least 1s")
	}
	if _, err := c.Reminder.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the reminder timezone.
func (c ReminderConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: reminder.timezone: %w", err)
	}
	return loc, nil
}

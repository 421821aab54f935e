package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	viper.Reset()
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "rest", cfg.Gemini.Transport)
	assert.Equal(t, 45*time.Second, cfg.Planner.Timeout)
	assert.InDelta(t, 0.6, cfg.Planner.Temperature, 1e-9)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 1000, cfg.Session.MaxSessions)
	assert.Equal(t, int64(10<<20), cfg.Intake.MaxUploadBytes())
	assert.Equal(t, "default", cfg.Notification.Permission)
	assert.Equal(t, time.Minute, cfg.Reminder.Interval)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GEMINI_TRANSPORT", "SDK")
	t.Setenv("PLANNER_TIMEOUT", "5s")
	t.Setenv("NOTIFICATION_PERMISSION", "granted")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sdk", cfg.Gemini.Transport)
	assert.Equal(t, 5*time.Second, cfg.Planner.Timeout)
	assert.Equal(t, "granted", cfg.Notification.Permission)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"transport", "GEMINI_TRANSPORT", "grpc"},
		{"permission", "NOTIFICATION_PERMISSION", "maybe"},
		{"timeout", "PLANNER_TIMEOUT", "0s"},
		{"timezone", "REMINDER_TIMEZONE", "Nowhere/Special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv("GEMINI_API_KEY", "k")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrMissingAPIKey)
		})
	}
}

func TestReminderLocation(t *testing.T) {
	loc, err := ReminderConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ReminderConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = ReminderConfig{Timezone: "Nowhere/Special"}.Location()
	assert.Error(t, err)
}

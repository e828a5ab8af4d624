package config

import (
	"os"
	"strconv"

	"github.com/lmoroni/trellodue-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackNotifyChannel string
	SlackAllowedUser   string
	TrelloAPIKey       string
	TrelloAPIToken     string
	DatabasePath       string
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackNotifyChannel: getEnv("SLACK_NOTIFY_CHANNEL", ""),
		SlackAllowedUser:   getEnv("SLACK_ALLOWED_USER", ""),
		TrelloAPIKey:       getEnv("TRELLO_API_KEY", ""),
		TrelloAPIToken:     getEnv("TRELLO_API_TOKEN", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./trellodue.db"),
		Port:               getEnv("PORT", "3000"),
	}
}

// Settings builds the initial reminder configuration from the
// environment, falling back to the defaults for anything unset or
// unparsable. Interval values go through the same clamps the slash
// commands use.
func Settings() domain.Settings {
	settings := domain.DefaultSettings()

	if minutes, ok := getEnvFloat("UPDATE_INTERVAL_MINUTES"); ok {
		settings.UpdateInterval = domain.ClampUpdateInterval(minutes)
	}

	if raw := os.Getenv("NOTIFICATION_INTERVAL_HOURS"); raw == "off" {
		settings.NotificationsOff = true
	} else if hours, ok := getEnvFloat("NOTIFICATION_INTERVAL_HOURS"); ok {
		settings.NotificationInterval = domain.ClampNotificationInterval(hours)
	}

	if verbose, ok := getEnvBool("VERBOSE"); ok {
		settings.Quiet = !verbose
	}

	return settings
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func getEnvBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}

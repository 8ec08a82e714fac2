// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress         string
	LogLevel            string
	LogFormat           string
	KafkaBrokers        []string
	RosterEventsEnabled bool
	RosterEventsTopic   string
	EnforceCapacity     bool // Reject signups once an activity reaches max_participants.
	ShutdownTimeout     time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:         getEnv("HTTP_ADDRESS", ":8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		RosterEventsEnabled: getBoolEnv("ROSTER_EVENTS_ENABLED", false),
		RosterEventsTopic:   getEnv("ROSTER_EVENTS_TOPIC", "roster_events"),
		EnforceCapacity:     getBoolEnv("SIGNUP_ENFORCE_CAPACITY", false),
		ShutdownTimeout:     getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

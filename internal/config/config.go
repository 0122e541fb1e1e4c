package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	// BotMoveDelay is how long the session layer waits before a scheduled
	// bot follow-up action fires.
	BotMoveDelay = 1500 * time.Millisecond

	// RoomTTL is how long an untouched room survives in the store.
	RoomTTL = 24 * time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	RedisURL    string
	PostgresURL string
	AdminToken  string
	Prefork     bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("LUDO_SERVER_HOST"),
		ServerPort:  getEnvMust("LUDO_SERVER_PORT"),
		RedisURL:    getEnvMust("LUDO_REDIS_URL"),
		PostgresURL: getEnvMust("LUDO_POSTGRES_URL"),
		AdminToken:  getEnvMust("LUDO_ADMIN_TOKEN"),
		Prefork:     getEnvMustBool("LUDO_SERVER_PREFORK"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

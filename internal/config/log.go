package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level for the application from LOG_LEVEL.
func SetLogLevel() {
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(envLevel))); err != nil {
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

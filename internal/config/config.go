package config

import (
	"fmt"
	"os"
)

// Config holds the server binary settings, read from the environment.
type Config struct {
	Addr     string
	LogLevel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Addr:     getenv("ADDR", "127.0.0.1:8973"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL=%q, want debug|info|warn|error", cfg.LogLevel)
	}

	return cfg, nil
}

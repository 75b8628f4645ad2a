package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// DefaultPoints and DefaultMaxSelections seed new questions that do not
	// set their own values.
	DefaultPoints        int
	DefaultMaxSelections int
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "pretty"),
		DefaultPoints:        getEnvInt("QUESTION_DEFAULT_POINTS", 1),
		DefaultMaxSelections: getEnvInt("QUESTION_DEFAULT_MAX_SELECTIONS", 1),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultBaseURL = "https://external.transitapp.com/v3/public"

// Config holds all application configuration.
type Config struct {
	Port           string `validate:"required"`
	Env            string
	TransitAPIKey  string `validate:"required"`
	TransitBaseURL string `validate:"required,url"`
	HTTPTimeout    time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// The Transit API key has no default; Validate rejects a config without one.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		TransitAPIKey:  getEnv("TRANSIT_API_KEY", ""),
		TransitBaseURL: getEnv("TRANSIT_BASE_URL", defaultBaseURL),
		HTTPTimeout:    getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present and well-formed.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}

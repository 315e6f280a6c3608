// Package config provides environment-based configuration for the portfolio server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime settings. Values come from environment variables,
// typically loaded from a .env file before Load is called.
type Config struct {
	// GitHub
	GitHubUsername string
	GitHubToken    string

	// Email
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	ContactEmail string

	// Persistence
	DatabaseURL string
	DataDir     string

	// App
	Port  int
	Debug bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		GitHubUsername: getEnvString("GITHUB_USERNAME", ""),
		GitHubToken:    getEnvString("GITHUB_TOKEN", ""),
		SMTPHost:       getEnvString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnvString("SMTP_USERNAME", ""),
		SMTPPassword:   getEnvString("SMTP_PASSWORD", ""),
		ContactEmail:   getEnvString("CONTACT_EMAIL", ""),
		DatabaseURL:    getEnvString("DATABASE_URL", ""),
		DataDir:        getEnvString("DATA_DIR", "data"),
		Port:           getEnvInt("PORT", 8000),
		Debug:          getEnvBool("DEBUG", false),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'PORT' must be between 1 and 65535, got %d", c.Port)
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("config error: 'SMTP_PORT' must be between 1 and 65535, got %d", c.SMTPPort)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: 'DATA_DIR' must not be empty")
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

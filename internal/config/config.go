package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port                 int
	Environment          string
	LogLevel             string
	LogFormat            string
	DataDir              string
	RolloverCheckMinutes int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DataDir:     getEnv("DATA_DIR", "data"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	checkStr := getEnv("ROLLOVER_CHECK_MINUTES", "5")
	check, err := strconv.Atoi(checkStr)
	if err != nil || check < 1 {
		return nil, fmt.Errorf("invalid ROLLOVER_CHECK_MINUTES value %q", checkStr)
	}
	cfg.RolloverCheckMinutes = check

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// DatabasePath returns the sqlite file location inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "inkgacha.db")
}

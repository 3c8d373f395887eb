package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds portal configuration
type Config struct {
	BackendBaseURL string
	LogLevel       string
	HTTPTimeout    time.Duration

	// Mock backend settings
	MockPort     string
	MockSeedData bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		BackendBaseURL: getEnv("PORTAL_BACKEND_URL", "https://salemalkaabi.pythonanywhere.com"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:    getEnvAsDuration("PORTAL_HTTP_TIMEOUT", 15*time.Second),
		MockPort:       getEnv("MOCK_PORT", "8080"),
		MockSeedData:   getEnvAsBool("MOCK_SEED_DATA", true),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

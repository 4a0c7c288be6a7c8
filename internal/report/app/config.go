package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AdminEmail    string // Required: the single admin identity
	AdminPassword string // Required: the admin password

	BaseURL      string        // Optional: public origin for portal links (default: http://localhost:8080)
	Currency     string        // Optional: ISO 4217 code for display formatting (default: USD)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./reportd.db)
	SessionTTL   time.Duration // Optional: admin session lifetime (default: 12h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		AdminEmail:    os.Getenv("REPORT_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("REPORT_ADMIN_PASSWORD"),

		BaseURL:      getEnvOrDefault("REPORT_BASE_URL", "http://localhost:8080"),
		Currency:     getEnvOrDefault("REPORT_CURRENCY", "USD"),
		DatabaseFile: getEnvOrDefault("REPORT_DATABASE_FILE", "reportd.db"),
		SessionTTL:   getEnvDurationOrDefault("REPORT_SESSION_TTL", 12*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

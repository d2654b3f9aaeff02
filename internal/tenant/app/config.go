package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for session tokens (default: teamgate-tenant)
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./tenant.db)
	SessionTTL    time.Duration // Optional: session token lifetime (default: 24h)
	PublicBaseURL string        // Optional: external base URL for invitation links (default: http://localhost:8080)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("TENANT_ISSUER", "teamgate-tenant"),
		DatabaseFile:         getEnvOrDefault("TENANT_DATABASE_FILE", "tenant.db"),
		SessionTTL:           getEnvDurationOrDefault("TENANT_SESSION_TTL", 24*time.Hour),
		PublicBaseURL:        getEnvOrDefault("TENANT_PUBLIC_URL", "http://localhost:8080"),
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

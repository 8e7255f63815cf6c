package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	SessionDBPath   string
	JWTSecret       string
	AuthEmail       string
	AuthPassword    string
	FixturePath     string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		SessionDBPath:   envOrDefault("SESSION_DB_PATH", "crm-session.db"),
		JWTSecret:       envOrDefault("JWT_SECRET", "dev-only-secret"),
		AuthEmail:       envOrDefault("AUTH_EMAIL", "admin@example.com"),
		AuthPassword:    envOrDefault("AUTH_PASSWORD", "password123"),
		FixturePath:     envOrDefault("FIXTURE_PATH", ""),
		CORSOrigins:     envList("CORS_ORIGINS"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

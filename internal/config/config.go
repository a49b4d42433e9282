// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DataFile is the path of the JSON document store.
	// Defaults to "data/db.json"; the file is created on first write.
	DataFile string

	// JWTSecret signs bearer tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens stay valid. Defaults to 24h.
	// Set TOKEN_TTL to any Go duration string to override.
	TokenTTL time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AdminUsername and AdminPassword seed the super-admin account when
	// the store holds no users at startup. Both optional; seeding is
	// skipped unless both are set.
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DataFile:      getEnv("DATA_FILE", "data/db.json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	ttlRaw := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttlRaw, err)
	}
	cfg.TokenTTL = ttl

	var missing []string

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port                 string
	Env                  string
	LogLevel             slog.Level
	DatabaseDSN          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// Load reads the configuration from the environment. An empty DATABASE_DSN
// selects the in-memory store, which production refuses.
func Load() (Config, error) {
	cfg := Config{
		Port:                 getEnv("PORT", "5000"),
		Env:                  getEnv("ENV", "development"),
		DatabaseDSN:          os.Getenv("DATABASE_DSN"),
		CORSAllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		CORSAllowCredentials: getEnv("CORS_ALLOW_CREDENTIALS", "true") == "true",
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.IsProduction() && cfg.DatabaseDSN == "" {
		return Config{}, errors.New("DATABASE_DSN must be set in production environment")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

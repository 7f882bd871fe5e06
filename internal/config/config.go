package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	// APIKeyHash is the Argon2id PHC hash of the client API key. When empty
	// the API runs open, with no token exchange (development mode).
	APIKeyHash string
	JWTSecret  string
	JWTExpiry  time.Duration
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passcheck?parseTime=true"),
		APIKeyHash:  getEnv("API_KEY_HASH", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:   time.Hour,
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "dev-secret-change-in-production" {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if cfg.APIKeyHash == "" {
			slog.Error("API_KEY_HASH must be set in production environment")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

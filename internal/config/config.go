package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment      string
	HTTPPort         string
	DatabasePath     string
	JWTSecret        string
	MailFunctionURL  string
	MailFnPort       string
	MailFnMode       string // "simulate" or "smtp"
	LogRetentionDays int
}

// Load reads env vars and falls back to defaults so the server can boot with zero configuration.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:      getEnv("CLUB_ENV", "development"),
		HTTPPort:         getEnv("CLUB_HTTP_PORT", "8080"),
		DatabasePath:     getEnv("CLUB_DB_PATH", filepath.Join("data", "club.db")),
		JWTSecret:        getEnv("CLUB_JWT_SECRET", "insecure-dev-secret"),
		MailFunctionURL:  getEnv("CLUB_MAIL_FN_URL", "http://localhost:8090/send"),
		MailFnPort:       getEnv("CLUB_MAILFN_PORT", "8090"),
		MailFnMode:       getEnv("CLUB_MAILFN_MODE", "simulate"),
		LogRetentionDays: getEnvInt("CLUB_LOG_RETENTION_DAYS", 90),
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data directory: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return fallback
}

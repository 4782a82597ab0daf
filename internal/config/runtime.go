package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL  = "24h"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultAdminUsername = "admin"
	defaultListenAddr    = ":8080"
	defaultSheetsScope   = "https://www.googleapis.com/auth/spreadsheets"
)

// RuntimeConfig carries everything cmd/api needs from the environment.
type RuntimeConfig struct {
	AppEnv     string
	ListenAddr string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Login de la revisión temprana: un único usuario fijo.
	AdminUsername     string
	AdminPasswordHash string

	// Google OAuth / Sheets.
	SpreadsheetID      string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GoogleRefreshToken string
	SheetsScope        string
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminUsername = strings.TrimSpace(getEnv("ADMIN_USERNAME", defaultAdminUsername))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	cfg.SpreadsheetID = strings.TrimSpace(os.Getenv("SPREADSHEET_ID"))
	cfg.GoogleClientID = strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_ID"))
	cfg.GoogleClientSecret = strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_SECRET"))
	cfg.GoogleRedirectURL = strings.TrimSpace(os.Getenv("GOOGLE_REDIRECT_URL"))
	cfg.GoogleRefreshToken = strings.TrimSpace(os.Getenv("GOOGLE_REFRESH_TOKEN"))
	cfg.SheetsScope = strings.TrimSpace(getEnv("SHEETS_SCOPE", defaultSheetsScope))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID must be set")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD_HASH must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, def))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultDatabaseURL      = "parkwash.db"
	defaultJWTAccessTTL     = "12h"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultRateType         = "MINUTE"
	defaultExpiringDays     = "7"
	defaultTimezone         = "UTC"
	defaultCORSAllowOrigins = "*"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// DefaultRateType is the billing granularity used on exit when the
	// request does not name one.
	DefaultRateType string
	// ExpiringWindowDays is how close to its end date a subscription is
	// reported as expiring.
	ExpiringWindowDays int
	Location           *time.Location

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.DefaultRateType = strings.ToUpper(strings.TrimSpace(getEnv("BILLING_DEFAULT_RATE_TYPE", defaultRateType)))
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSAllowOrigins))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.ExpiringWindowDays, err = parseIntEnv("SUBSCRIPTION_EXPIRING_DAYS", defaultExpiringDays)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(getEnv("APP_TIMEZONE", defaultTimezone))
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE value %q: %w", tz, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s default_rate_type=%s timezone=%s", cfg.AppEnv, cfg.HTTPAddr, cfg.DefaultRateType, cfg.Location)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.ExpiringWindowDays < 0 {
		return fmt.Errorf("SUBSCRIPTION_EXPIRING_DAYS must be >= 0")
	}
	switch cfg.DefaultRateType {
	case "MINUTE", "HOUR", "DAY", "MONTH":
	default:
		return fmt.Errorf("BILLING_DEFAULT_RATE_TYPE must be one of: MINUTE, HOUR, DAY, MONTH")
	}

	if IsProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

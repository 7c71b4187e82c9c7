package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr       = ":5000"
	defaultDSN        = "smartserve.db"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultSessionTTL = "24h"
)

// DataSource selects where handlers read and write durable state.
type DataSource string

const (
	// DataSourceDatabase uses the relational store from DATABASE_URL.
	DataSourceDatabase DataSource = "database"
	// DataSourceFixture uses the in-memory demo dataset. Also the fallback
	// when the database is unreachable at startup.
	DataSourceFixture DataSource = "fixture"
)

type Config struct {
	AppEnv         string
	Addr           string
	DatabaseURL    string
	DataSource     DataSource
	JWTSecret      string
	SessionTTL     time.Duration
	CookieSecure   bool
	CookieSameSite string
	RedisAddr      string
	StaticDir      string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", "dev")),
		Addr:           getEnv("ADDR", defaultAddr),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDSN),
		DataSource:     DataSource(strings.ToLower(getEnv("DATA_SOURCE", string(DataSourceDatabase)))),
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		CookieSecure:   parseBoolEnv("COOKIE_SECURE", false),
		CookieSameSite: getEnv("COOKIE_SAMESITE", "Lax"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		StaticDir:      getEnv("STATIC_DIR", "frontend"),
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", defaultSessionTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if cfg.DataSource != DataSourceDatabase && cfg.DataSource != DataSourceFixture {
		return nil, fmt.Errorf("invalid DATA_SOURCE %q: must be database or fixture", cfg.DataSource)
	}

	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "strict" && sameSite != "none" {
		return nil, fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, Strict, None")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return nil, fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if cfg.isProdLike() {
		if strings.TrimSpace(cfg.JWTSecret) == "" || cfg.JWTSecret == defaultJWTSecret {
			return nil, fmt.Errorf("in prod JWT_SECRET must be set and not default")
		}
	}

	return cfg, nil
}

func (c *Config) isProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

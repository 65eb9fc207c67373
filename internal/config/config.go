package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// TokenTTL is the lifetime of every issued bearer token.
const TokenTTL = time.Hour

// ErrJWTSecretMissing is returned when neither JWT_SECRET nor JWT_SECRET_ID is set.
var ErrJWTSecretMissing = errors.New("JWT_SECRET or JWT_SECRET_ID must be set")

type Config struct {
	Port           string
	Env            string
	DBDriver       string
	DatabaseDSN    string
	JWTSecret      string
	JWTSecretID    string
	JWTExpiry      time.Duration
	AuthRateLimit  float64
	AuthRateBurst  int
	MigrateOnStart bool
}

// Load reads configuration from the environment. The signing secret is not
// resolved here when only JWT_SECRET_ID is given; see ResolveJWTSecret.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "3001"),
		Env:         getEnv("ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/tododb"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTSecretID: os.Getenv("JWT_SECRET_ID"),
		JWTExpiry:   TokenTTL,
	}

	var err error
	if cfg.AuthRateLimit, err = getFloat("AUTH_RATE_LIMIT_RPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.AuthRateBurst, err = getInt("AUTH_RATE_LIMIT_BURST", 10); err != nil {
		return Config{}, err
	}
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", true); err != nil {
		return Config{}, err
	}

	switch cfg.DBDriver {
	case "mysql", "sqlite":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be mysql or sqlite, got %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" && cfg.JWTSecretID == "" {
		return Config{}, ErrJWTSecretMissing
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

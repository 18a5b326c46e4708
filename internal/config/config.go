package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the process reads from the environment. It is
// built once in main and passed into components; nothing below main reads
// env vars directly.
type Config struct {
	Port       string
	DataDir    string
	JWTSecret  []byte
	TokenTTL   time.Duration
	CORSOrigin string

	// Rate limiting for the unauthenticated auth endpoints.
	AuthRateMax    int
	AuthRateWindow time.Duration
}

// Load reads the environment. JWT_SECRET is required; everything else has
// a sensible default.
func Load() (Config, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	ttlDays := envInt("TOKEN_TTL_DAYS", 30)

	return Config{
		Port:           env("PORT", "8080"),
		DataDir:        env("DATA_DIR", "./data"),
		JWTSecret:      []byte(secret),
		TokenTTL:       time.Duration(ttlDays) * 24 * time.Hour,
		CORSOrigin:     env("CORS_ORIGIN", "*"),
		AuthRateMax:    envInt("RATE_LIMIT_AUTH_MAX", 30),
		AuthRateWindow: time.Duration(envInt("RATE_LIMIT_AUTH_WINDOW_SECONDS", 60)) * time.Second,
	}, nil
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/talentsift/talentsift/pkg/jwtx"
)

type Config struct {
	Issuer string // Required: issuer claim for tokens

	AccessSecret  string // Required: HMAC secret for access tokens (min 32 bytes)
	RefreshSecret string // Required: HMAC secret for refresh tokens (min 32 bytes)

	AccessTTL  time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTTL time.Duration // Optional: refresh token lifetime (default: 7d)

	// RequireEmailVerification blocks login until the address is confirmed.
	RequireEmailVerification bool

	// CookieSecure marks the refresh cookie Secure. Disable only for local
	// development over plain http.
	CookieSecure bool

	AppBaseURL           string        // Optional: base URL for emailed links (default: http://localhost:8080)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:                   getEnvOrDefault("AUTH_ISSUER", "talentsift-auth"),
		AccessSecret:             os.Getenv("AUTH_ACCESS_SECRET"),
		RefreshSecret:            os.Getenv("AUTH_REFRESH_SECRET"),
		AccessTTL:                getEnvDurationOrDefault("AUTH_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:               getEnvDurationOrDefault("AUTH_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),
		RequireEmailVerification: getEnvBoolOrDefault("AUTH_REQUIRE_EMAIL_VERIFICATION", true),
		CookieSecure:             getEnvBoolOrDefault("AUTH_COOKIE_SECURE", true),
		AppBaseURL:               getEnvOrDefault("APP_BASE_URL", "http://localhost:8080"),
		DatabaseFile:             getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:               getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		Env:                      getEnvOrDefault("ENV", "dev"),
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:                getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                     getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:      getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:     getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if len(cfg.AccessSecret) < jwtx.MinSecretLength {
		return Config{}, fmt.Errorf("AUTH_ACCESS_SECRET must be set and at least %d bytes", jwtx.MinSecretLength)
	}
	if len(cfg.RefreshSecret) < jwtx.MinSecretLength {
		return Config{}, fmt.Errorf("AUTH_REFRESH_SECRET must be set and at least %d bytes", jwtx.MinSecretLength)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return Config{}, fmt.Errorf("AUTH_ACCESS_SECRET and AUTH_REFRESH_SECRET must differ")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

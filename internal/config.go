package internal

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Where a successful registration submit navigates to
	ChatPath string

	// HTTP server timeouts
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// Honor X-Forwarded-For / X-Real-IP for client IPs. Only enable behind a
	// proxy that overwrites them.
	TrustProxy bool

	// Per-client request limits on the form POST routes
	SubmitRateLimit   int
	ValidateRateLimit int
	RateLimitWindow   time.Duration

	// Metrics endpoint
	// If both credentials are empty, the /metrics endpoint will be unprotected
	MetricsEnabled  bool
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	env := &envLoader{}
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     env.getInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		ChatPath: getEnv("CHAT_PATH", "/chat"),

		ReadHeaderTimeout: env.getDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   env.getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		TrustProxy: env.getBool("TRUST_PROXY", false),

		SubmitRateLimit:   env.getInt("SUBMIT_RATE_LIMIT", 20),
		ValidateRateLimit: env.getInt("VALIDATE_RATE_LIMIT", 300),
		RateLimitWindow:   env.getDuration("RATE_LIMIT_WINDOW", time.Minute),

		MetricsEnabled:  env.getBool("METRICS_ENABLED", true),
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs with development defaults
// (text logs, non-Secure cookies).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got: %s", c.LogLevel)
	}

	if !strings.HasPrefix(c.ChatPath, "/") || strings.HasPrefix(c.ChatPath, "//") {
		return fmt.Errorf("CHAT_PATH must be a local path starting with '/', got: %s", c.ChatPath)
	}
	if strings.ContainsAny(c.ChatPath, "{} ?#") || path.Clean(c.ChatPath) != c.ChatPath {
		return fmt.Errorf("CHAT_PATH must be a plain, clean path, got: %s", c.ChatPath)
	}
	for _, reserved := range []string{"/register", "/health", "/metrics"} {
		if c.ChatPath == "/" || strings.HasPrefix(c.ChatPath, reserved) {
			return fmt.Errorf("CHAT_PATH must not shadow %s, got: %s", reserved, c.ChatPath)
		}
	}

	if c.SubmitRateLimit < 1 || c.ValidateRateLimit < 1 {
		return fmt.Errorf("SUBMIT_RATE_LIMIT and VALIDATE_RATE_LIMIT must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got: %s", c.RateLimitWindow)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got: %s", c.ShutdownTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envLoader reads typed values from the environment. Unset keys take the
// fallback; unparsable values are collected as errors.
type envLoader struct {
	errs []error
}

func (l *envLoader) getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s must be an integer, got: %s", key, value))
		return fallback
	}
	return i
}

func (l *envLoader) getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s must be a boolean, got: %s", key, value))
		return fallback
	}
	return b
}

func (l *envLoader) getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s must be a duration such as 30s, got: %s", key, value))
		return fallback
	}
	return d
}

package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "LOG_LEVEL", "CHAT_PATH", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT", "SUBMIT_RATE_LIMIT", "VALIDATE_RATE_LIMIT", "RATE_LIMIT_WINDOW", "TRUST_PROXY"} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/chat", cfg.ChatPath)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 20, cfg.SubmitRateLimit)
	assert.Equal(t, 300, cfg.ValidateRateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.TrustProxy)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CHAT_PATH", "/rooms")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/rooms", cfg.ChatPath)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"external chat path", "CHAT_PATH", "https://evil.com"},
		{"protocol-relative chat path", "CHAT_PATH", "//evil.com"},
		{"root chat path", "CHAT_PATH", "/"},
		{"chat path shadows register", "CHAT_PATH", "/register/validate"},
		{"chat path with wildcard", "CHAT_PATH", "/chat/{room}"},
		{"chat path with dot-dot", "CHAT_PATH", "/a/../chat"},
		{"chat path with dot segment", "CHAT_PATH", "/chat/./x"},
		{"chat path with double slash", "CHAT_PATH", "/chat//x"},
		{"chat path with trailing slash", "CHAT_PATH", "/chat/"},
		{"unparsable port", "PORT", "abc"},
		{"unparsable bool", "METRICS_ENABLED", "maybe"},
		{"unparsable duration", "SHUTDOWN_TIMEOUT", "soon"},
		{"port out of range", "PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"zero submit limit", "SUBMIT_RATE_LIMIT", "0"},
		{"negative window", "RATE_LIMIT_WINDOW", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

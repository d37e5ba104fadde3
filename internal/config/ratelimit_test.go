package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
	assert.Equal(t, "rl", cfg.Prefix)
}

func TestLoadRateLimitConfigClampsWindow(t *testing.T) {
	for _, raw := range []string{"500ms", "0s", "-1m"} {
		t.Setenv("RATE_LIMIT_WINDOW", raw)
		cfg := LoadRateLimitConfig()
		assert.GreaterOrEqual(t, cfg.Window, time.Second, "window %q must be clamped", raw)
	}
}

func TestLoadRateLimitConfigClampsLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Limit)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/business-admin/internal/config"
)

func serveLimited(t *testing.T, limiter echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := limiter(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	limiter := RateLimit(config.RateLimitConfig{Enabled: false}, nil)
	rec := serveLimited(t, limiter)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitNilClientPassesThrough(t *testing.T) {
	limiter := RateLimit(config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute, Prefix: "rl"}, nil)
	rec := serveLimited(t, limiter)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// An unreachable Redis must fail open, and a sub-second window must
// not break the window arithmetic on the way there.
func TestRateLimitSubSecondWindowFailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	limiter := RateLimit(config.RateLimitConfig{
		Enabled: true,
		Limit:   5,
		Window:  500 * time.Millisecond,
		Prefix:  "rl",
	}, rdb)

	rec := serveLimited(t, limiter)
	assert.Equal(t, http.StatusOK, rec.Code)
}

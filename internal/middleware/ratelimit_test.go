package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimi-dev/employee-leave-api/internal/config"
)

// Without Redis the limiter must be a transparent pass-through.
func TestTokenBucketDisabledPassesThrough(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.RateLimitConfig
	}{
		{"disabled", config.RateLimitConfig{Enabled: false}},
		{"no redis", config.RateLimitConfig{Enabled: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/leaves", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				return c.String(http.StatusOK, "ok")
			}
			require.NoError(t, NewTokenBucket(tc.cfg, nil)(next)(c))
			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
		})
	}
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimi-dev/employee-leave-api/internal/auth"
	"github.com/mkarimi-dev/employee-leave-api/internal/handler"
)

// The gating tests never reach a handler body, so the handlers can be
// constructed without stores.
func newServer(tokens *auth.TokenService) *echo.Echo {
	e := echo.New()
	users := handler.NewUserHandler(nil, auth.NewPasswordHasher(0), tokens)
	leaves := handler.NewLeaveHandler(nil, nil, false, nil)
	RegisterRoutes(e, users, leaves, tokens)
	return e
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newServer(tokens)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodGet, "/leaves"},
		{http.MethodPost, "/leaves"},
		{http.MethodGet, "/leaves/1"},
		{http.MethodPut, "/leaves/1"},
		{http.MethodDelete, "/leaves/1"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			// No Authorization header at all.
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			// Syntactically fine bearer signed with the wrong key.
			forged, err := auth.NewTokenService("other-secret", time.Hour).Issue(1)
			require.NoError(t, err)
			req = httptest.NewRequest(route.method, route.path, nil)
			req.Header.Set("Authorization", "Bearer "+forged)
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestHealthIsPublic(t *testing.T) {
	e := newServer(auth.NewTokenService("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

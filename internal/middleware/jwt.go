package middleware // reusable HTTP middleware for the API

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/auth"
)

// Authenticate returns an Echo middleware that gates protected routes
// behind a bearer token. A missing or malformed Authorization header
// is rejected with 401; a token that fails verification for any
// reason (bad signature, expired, unparseable) is rejected with 403.
// On success the token's subject is stored in the context under
// "user_id" and the chain continues. The gate touches no state beyond
// the context and never queries the database.
func Authenticate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Token missing"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			userID, err := tokens.Verify(raw)
			if err != nil {
				// Expired and invalid tokens share one response on
				// purpose; clients are not told which case they hit.
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid token"})
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

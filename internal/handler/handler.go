// Package handler implements the HTTP layer: payload validation,
// translation to persistence calls, and a uniform mapping from
// persistence outcomes to JSON responses.
package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/model"
)

// dbTimeout bounds every persistence call made on behalf of a request.
const dbTimeout = 5 * time.Second

// UserStore is the persistence gateway surface the user handlers
// consume. Implementations return repository.ErrNotFound when an id
// matches nothing; any other error is treated as internal.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, userID int64) (model.User, error)
	Create(ctx context.Context, u model.User) error
	Update(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, userID int64) (model.User, error)
}

// LeaveStore is the persistence gateway surface for leave requests.
type LeaveStore interface {
	List(ctx context.Context) ([]model.Leave, error)
	Get(ctx context.Context, leaveID int64) (model.Leave, error)
	Create(ctx context.Context, l model.Leave) (model.Leave, error)
	Update(ctx context.Context, l model.Leave) (model.Leave, error)
	Delete(ctx context.Context, leaveID int64) (model.Leave, error)
}

// reqContext derives a bounded context from the inbound request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// validationError reports the first missing field of a payload.
func validationError(c echo.Context, field string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   "Missing required fields",
		"details": field + " is required",
	})
}

// internalError logs the underlying cause and returns the uniform 500
// body. Stack traces and driver errors stay in the log; the caller
// only sees a diagnostic message.
func internalError(c echo.Context, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "Internal Server Error",
		"details": err.Error(),
	})
}

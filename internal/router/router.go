// Package router wires the HTTP surface: public routes for health,
// login and registration, and bearer-gated routes for everything else.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/auth"
	"github.com/mkarimi-dev/employee-leave-api/internal/handler"
	"github.com/mkarimi-dev/employee-leave-api/internal/middleware"
)

// RegisterRoutes attaches every endpoint to the Echo instance. The
// auth gate wraps the protected group only; login and registration
// must be reachable without a token.
func RegisterRoutes(e *echo.Echo, users *handler.UserHandler, leaves *handler.LeaveHandler, tokens *auth.TokenService) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated: obtaining a token, and registering the profile
	// that a token will later be issued for.
	e.POST("/login", users.Login)
	e.POST("/users", users.Create)

	g := e.Group("")
	g.Use(middleware.Authenticate(tokens))

	g.GET("/users", users.List)
	g.GET("/users/:userId", users.Get)
	g.PUT("/users/:userId", users.Update)
	g.DELETE("/users/:userId", users.Delete)

	g.GET("/leaves", leaves.List)
	g.POST("/leaves", leaves.Create)
	g.GET("/leaves/:leaveId", leaves.Get)
	g.PUT("/leaves/:leaveId", leaves.Update)
	g.DELETE("/leaves/:leaveId", leaves.Delete)
}

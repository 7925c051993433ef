package middleware

import (
	"context"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Headers shared between handlers and the CORS middleware.
const (
	// EditKeyHeader carries the secret returned when a card is saved.
	EditKeyHeader = "X-Edit-Key"

	// CacheStatusHeader reports whether a proxied image came from Redis.
	CacheStatusHeader = "X-Cache"
)

// LayoutInjector is a function that copies layout-relevant data from the Echo
// context (CSRF token, active path) into Go's context.Context so Templ
// templates can read it. Registered once at startup in app/routes.go.
//
// This callback pattern avoids the middleware package importing the
// templates packages.
var LayoutInjector func(echo.Context, context.Context) context.Context

// Render writes a Templ component to the response with the given status code.
// Before rendering, it runs the LayoutInjector (if registered) to copy
// request data into the Go context for Templ templates to access.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	ctx := c.Request().Context()

	if LayoutInjector != nil {
		ctx = LayoutInjector(c, ctx)
	}

	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response().WriteHeader(statusCode)
	return component.Render(ctx, c.Response().Writer)
}

package gallery

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the browser pages.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Index)
	e.GET("/designs", h.Designs)
}

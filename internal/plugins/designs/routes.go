package designs

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the design suggestion API on the given group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.POST("/designs", h.Generate)
	api.POST("/designs/normalize", h.Normalize)
}

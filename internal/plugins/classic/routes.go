package classic

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the classic template API on the given group.
// All routes are public and read-only.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/templates", h.List)
	api.GET("/templates/catalog", h.Catalog)
	api.GET("/templates/:id", h.Show)
	api.GET("/contrast", h.Contrast)
}

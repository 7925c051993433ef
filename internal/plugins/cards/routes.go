package cards

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up saved card routes on the given group. Writes are
// authorized per card by edit key, not by session. limit throttles create
// and update per client IP, which hash a key and decode a logo; it may be nil.
func RegisterRoutes(api *echo.Group, h *Handler, limit echo.MiddlewareFunc) {
	var writeMW []echo.MiddlewareFunc
	if limit != nil {
		writeMW = append(writeMW, limit)
	}

	api.POST("/cards", h.Create, writeMW...)
	api.GET("/cards/:id", h.Show)
	api.PUT("/cards/:id", h.Update, writeMW...)
	api.DELETE("/cards/:id", h.Delete)
	api.GET("/cards/:id/vcard", h.VCard)
	api.GET("/cards/:id/history", h.History)
}

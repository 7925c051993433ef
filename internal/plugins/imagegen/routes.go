package imagegen

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the image generation proxy on the given group.
// limit throttles the generate route per client IP; it may be nil. The
// generation log is only served behind operator, and is not registered
// when operator is nil.
func RegisterRoutes(api *echo.Group, h *Handler, limit, operator echo.MiddlewareFunc) {
	if limit != nil {
		api.POST("/generate-design", h.Generate, limit)
	} else {
		api.POST("/generate-design", h.Generate)
	}
	if operator != nil {
		api.GET("/generate-design/history", h.History, operator)
	}
}

package imagegen

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/middleware"
)

// Handler serves the image generation proxy.
type Handler struct {
	service ImageService
}

// NewHandler creates a new image generation handler.
func NewHandler(service ImageService) *Handler {
	return &Handler{service: service}
}

// Generate proxies a prompt to the image model (POST /api/generate-design).
// The upstream body is relayed unchanged with its content type: JSON from
// the model stays JSON and image bytes stay image bytes.
func (h *Handler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	prompt := req.Prompt
	if prompt == "" && req.Card != nil {
		prompt = BuildPrompt(*req.Card)
	}

	res, err := h.service.Generate(c.Request().Context(), GenerateInput{
		Prompt:   prompt,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	cacheStatus := "MISS"
	if res.Cached {
		cacheStatus = "HIT"
	}
	c.Response().Header().Set(middleware.CacheStatusHeader, cacheStatus)

	contentType := res.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(http.StatusOK, contentType, res.Body)
}

// History lists recent generation calls (GET /api/generate-design/history).
func (h *Handler) History(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperror.NewBadRequest("limit must be a non-negative whole number")
		}
		limit = n
	}

	entries, err := h.service.History(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

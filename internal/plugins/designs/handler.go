package designs

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/validate"
)

// Handler serves the design suggestion API.
type Handler struct {
	service DesignService
}

// NewHandler creates a new design handler.
func NewHandler(service DesignService) *Handler {
	return &Handler{service: service}
}

// Generate returns suggested designs (POST /api/designs).
func (h *Handler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	count := req.Count
	if count == 0 {
		count = DefaultCount
	}

	designs, err := h.service.Generate(c.Request().Context(), count)
	if err != nil {
		return apperror.NewInternal(err)
	}
	return c.JSON(http.StatusOK, designs)
}

// Normalize fills in defaults for externally produced design records
// (POST /api/designs/normalize).
func (h *Handler) Normalize(c echo.Context) error {
	var req NormalizeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.service.Normalize(req.Designs))
}

package classic

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
)

// Handler serves the classic template JSON API.
type Handler struct {
	service TemplateService
}

// NewHandler creates a new classic template handler.
func NewHandler(service TemplateService) *Handler {
	return &Handler{service: service}
}

// contrastResponse is the body of GET /api/contrast.
type contrastResponse struct {
	Color     string  `json:"color"`
	TextColor string  `json:"text_color"`
	Luminance float64 `json:"luminance"`
	Valid     bool    `json:"valid"`
}

// catalogResponse is the body of GET /api/templates/catalog.
type catalogResponse struct {
	Fonts       []string `json:"fonts"`
	Layouts     []string `json:"layouts"`
	Palettes    int      `json:"palettes"`
	Pairings    int      `json:"pairings"`
	GallerySize int      `json:"gallery_size"`
	MaxCount    int      `json:"max_count"`
	MinFontSize int      `json:"min_font_size"`
	MaxFontSize int      `json:"max_font_size"`
}

// List returns the generated gallery (GET /api/templates?count=N).
// Without count the configured gallery size is used. The whole list is
// regenerated on every call; clients replace their grid with it.
func (h *Handler) List(c echo.Context) error {
	count, err := ParseCount(c.QueryParam("count"), h.service.GallerySize())
	if err != nil {
		return err
	}

	templates, err := h.service.List(count)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, templates)
}

// Show returns one template with optional overrides
// (GET /api/templates/:id?font=&size=&text=&accent=).
func (h *Handler) Show(c echo.Context) error {
	var o Overrides
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &o); err != nil {
		return apperror.NewBadRequest("invalid override parameters")
	}

	t, err := h.service.Get(c.Param("id"), o)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Catalog describes the catalogs behind the gallery for the customize panel
// (GET /api/templates/catalog).
func (h *Handler) Catalog(c echo.Context) error {
	layouts := make([]string, len(Layouts))
	for i, l := range Layouts {
		layouts[i] = string(l)
	}
	return c.JSON(http.StatusOK, catalogResponse{
		Fonts:       Fonts(),
		Layouts:     layouts,
		Palettes:    PaletteCount,
		Pairings:    PairingCount,
		GallerySize: h.service.GallerySize(),
		MaxCount:    MaxTemplateCount,
		MinFontSize: MinFontSize,
		MaxFontSize: MaxFontSize,
	})
}

// Contrast resolves the readable text color for a background
// (GET /api/contrast?color=%23RRGGBB). Malformed colors are not an error:
// they resolve to black with valid=false.
func (h *Handler) Contrast(c echo.Context) error {
	color := c.QueryParam("color")
	l, ok := cardstyle.Luminance(color)
	return c.JSON(http.StatusOK, contrastResponse{
		Color:     color,
		TextColor: cardstyle.ContrastColor(color),
		Luminance: l,
		Valid:     ok,
	})
}

// ParseCount reads a ?count= value. Empty means def. Non-numeric and
// negative values are rejected rather than clamped.
func ParseCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewBadRequest("count must be a whole number")
	}
	if n < 0 {
		return 0, apperror.NewBadRequest("count must not be negative")
	}
	if n > MaxTemplateCount {
		return 0, apperror.NewBadRequest("count is too large")
	}
	return n, nil
}

package cards

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/middleware"
)

// Handler handles HTTP requests for saved cards.
type Handler struct {
	service CardService
}

// NewHandler creates a new card handler.
func NewHandler(service CardService) *Handler {
	return &Handler{service: service}
}

// Create saves a new card (POST /api/cards). The edit key is only ever
// returned here.
func (h *Handler) Create(c echo.Context) error {
	var input CardInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	result, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// Show returns a saved card (GET /api/cards/:id).
func (h *Handler) Show(c echo.Context) error {
	card, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, card)
}

// Update replaces a saved card (PUT /api/cards/:id, X-Edit-Key required).
func (h *Handler) Update(c echo.Context) error {
	var input CardInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	card, err := h.service.Update(c.Request().Context(), c.Param("id"), c.Request().Header.Get(middleware.EditKeyHeader), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, card)
}

// Delete removes a saved card (DELETE /api/cards/:id, X-Edit-Key required).
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), c.Request().Header.Get(middleware.EditKeyHeader)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// History returns a card's activity log (GET /api/cards/:id/history,
// X-Edit-Key required).
func (h *Handler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.Param("id"), c.Request().Header.Get(middleware.EditKeyHeader))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// filenameUnsafe matches characters not allowed in the download name.
var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// VCard downloads the card as a contact (GET /api/cards/:id/vcard).
func (h *Handler) VCard(c echo.Context) error {
	card, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	name := filenameUnsafe.ReplaceAllString(card.Name, "-")
	if name == "" || name == "-" {
		name = "card"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.vcf"`, name))
	return c.Blob(http.StatusOK, "text/vcard; charset=utf-8", []byte(FormatVCard(card.CardData)))
}

// Package gallery serves the browser pages: the classic template gallery
// and the page of suggested designs. Both draw every face through the
// cardview layout registry.
package gallery

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/middleware"
	"github.com/keyxmakerx/cardstudio/internal/plugins/cards"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
	"github.com/keyxmakerx/cardstudio/internal/templates/cardview"
)

// DefaultDesignCount is how many designs the designs page shows without
// ?count=.
const DefaultDesignCount = 12

// Handler renders the gallery pages.
type Handler struct {
	templates classic.TemplateService
	cards     cards.CardService
	designs   designs.DesignService
}

// NewHandler creates a new gallery handler.
func NewHandler(templates classic.TemplateService, cardService cards.CardService, designService designs.DesignService) *Handler {
	return &Handler{templates: templates, cards: cardService, designs: designService}
}

// Index renders the classic template gallery
// (GET /?count=&card=&font=&size=&text=&accent=). A saved card supplies the
// contact data, its overrides and the highlighted template. Query overrides
// are applied on top.
func (h *Handler) Index(c echo.Context) error {
	count, err := classic.ParseCount(c.QueryParam("count"), h.templates.GallerySize())
	if err != nil {
		return err
	}

	view := GalleryView{Count: count, Contact: contactFrom(cards.SampleData)}

	var overrides classic.Overrides
	if id := c.QueryParam("card"); id != "" {
		if h.cards == nil {
			return apperror.NewMissingDependency()
		}
		card, err := h.cards.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}
		view.Contact = contactFrom(card.CardData)
		view.Selected = card.TemplateID
		view.CardID = card.ID
		overrides = card.Overrides
	}

	var query classic.Overrides
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return apperror.NewBadRequest("invalid override parameters")
	}
	overrides = merge(overrides, query)
	if err := overrides.Validate(); err != nil {
		return apperror.NewValidation(err.Error())
	}

	templates, err := h.templates.List(count)
	if err != nil {
		return err
	}
	view.Templates = make([]classic.Template, len(templates))
	for i, t := range templates {
		view.Templates[i] = classic.Customize(t, overrides)
	}

	return middleware.Render(c, http.StatusOK, GalleryPage(view))
}

// Designs renders a page of suggested designs (GET /designs?count=).
func (h *Handler) Designs(c echo.Context) error {
	count, err := classic.ParseCount(c.QueryParam("count"), DefaultDesignCount)
	if err != nil {
		return err
	}
	if count > designs.MaxCount {
		return apperror.NewBadRequest(fmt.Sprintf("count must be at most %d", designs.MaxCount))
	}

	list, err := h.designs.Generate(c.Request().Context(), count)
	if err != nil {
		return apperror.NewInternal(err)
	}

	return middleware.Render(c, http.StatusOK, DesignsPage(list, contactFrom(cards.SampleData)))
}

// contactFrom copies card data into the renderer's contact type.
func contactFrom(d cards.CardData) cardview.Contact {
	return cardview.Contact{
		Name:    d.Name,
		Title:   d.Title,
		Company: d.Company,
		Email:   d.Email,
		Phone:   d.Phone,
		Website: d.Website,
		Address: d.Address,
		Logo:    d.Logo,
	}
}

// merge returns base with every field set in top replaced.
func merge(base, top classic.Overrides) classic.Overrides {
	if top.FontFamily != "" {
		base.FontFamily = top.FontFamily
	}
	if top.FontSize != 0 {
		base.FontSize = top.FontSize
	}
	if top.TextColor != "" {
		base.TextColor = top.TextColor
	}
	if top.AccentColor != "" {
		base.AccentColor = top.AccentColor
	}
	return base
}

package cardview

import (
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
)

// renderer draws the content of one face.
type renderer func(fw *faceWriter, f Face, c Contact)

// fallbackLayout is drawn for layouts with no renderer.
const fallbackLayout = string(classic.LayoutBackInfoStandard)

// renderers maps every classic and design layout to its renderer.
var renderers = map[string]renderer{
	string(classic.LayoutFrontLogoCentric):     renderLogoCentric,
	string(classic.LayoutFrontMinimalVertical): renderMinimalVertical,
	string(classic.LayoutFrontLogoLeft):        renderLogoLeft,
	string(classic.LayoutFrontPatternBand):     renderPatternBand,
	string(classic.LayoutBackSidebarRight):     renderSidebarRight,
	string(classic.LayoutBackSidebarLeft):      renderSidebarLeft,
	string(classic.LayoutBackElegantCurves):    renderElegantCurves,
	string(classic.LayoutBackInfoStandard):     renderInfoStandard,

	string(designs.LayoutLeftAlign):         renderLeftAlign,
	string(designs.LayoutCentered):          renderCentered,
	string(designs.LayoutSplit):             renderSplit,
	string(designs.LayoutModern):            renderModern,
	string(designs.LayoutLogoCentricFront):  renderLogoCentric,
	string(designs.LayoutInfoGridBack):      renderInfoGrid,
	string(designs.LayoutElegantCurve):      renderElegantCurves,
	string(designs.LayoutMinimalBorderLeft): renderMinimalBorderLeft,
}

// rendererFor returns the layout actually drawn and its renderer.
func rendererFor(layout string) (string, renderer) {
	if r, ok := renderers[layout]; ok {
		return layout, r
	}
	return fallbackLayout, renderers[fallbackLayout]
}

// HasRenderer reports whether layout has its own renderer.
func HasRenderer(layout string) bool {
	_, ok := renderers[layout]
	return ok
}

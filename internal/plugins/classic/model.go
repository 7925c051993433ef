// Package classic generates the gallery of classic business card templates.
// A template pairs a front and back SideConfig built from three static
// catalogs (palettes, layout pairings, fonts) by independent modular
// indexing. Generation is deterministic: the same count always yields the
// same templates.
package classic

import "github.com/keyxmakerx/cardstudio/internal/cardstyle"

// LayoutID names the renderer used for one card face.
type LayoutID string

// Front and back layouts.
const (
	LayoutFrontLogoCentric     LayoutID = "front-logo-centric"
	LayoutFrontMinimalVertical LayoutID = "front-minimal-vertical"
	LayoutFrontLogoLeft        LayoutID = "front-logo-left"
	LayoutFrontPatternBand     LayoutID = "front-pattern-band"
	LayoutBackSidebarRight     LayoutID = "back-info-sidebar-right"
	LayoutBackSidebarLeft      LayoutID = "back-info-sidebar-left"
	LayoutBackElegantCurves    LayoutID = "back-elegant-curves"
	LayoutBackInfoStandard     LayoutID = "back-info-standard"
)

// Layouts lists every known layout ID.
var Layouts = []LayoutID{
	LayoutFrontLogoCentric,
	LayoutFrontMinimalVertical,
	LayoutFrontLogoLeft,
	LayoutFrontPatternBand,
	LayoutBackSidebarRight,
	LayoutBackSidebarLeft,
	LayoutBackElegantCurves,
	LayoutBackInfoStandard,
}

// Side patterns.
const (
	PatternNone   = "none"
	PatternDamask = "damask"
)

// SideConfig is the full visual configuration of one card face.
type SideConfig struct {
	Layout      LayoutID `json:"layout"`
	BgStyle     string   `json:"bgStyle"`
	BgColors    []string `json:"bgColors"`
	TextColor   string   `json:"textColor"`
	AccentColor string   `json:"accentColor"`
	FontFamily  string   `json:"fontFamily"`
	FontSize    int      `json:"fontSize,omitempty"` // Set only by overrides.
	Orientation string   `json:"orientation"`
	Pattern     string   `json:"pattern"`
}

// PrimaryBackground returns the color text contrast is resolved against.
func (s SideConfig) PrimaryBackground() string {
	return cardstyle.PrimaryBackground(s.BgColors)
}

// ReadableTextColor returns the contrast-resolved text color for the face.
func (s SideConfig) ReadableTextColor() string {
	return cardstyle.ContrastColor(s.PrimaryBackground())
}

// Template is one selectable design: a named front/back pair.
type Template struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Front SideConfig `json:"front"`
	Back  SideConfig `json:"back"`
}

// Palette is a themed set of colors covering both faces.
type Palette struct {
	Name      string
	BgDark    []string
	TextLight string
	Accent    string
	BgLight   []string
	TextDark  string
}

// LayoutPairing associates a front layout with a back layout.
type LayoutPairing struct {
	Name  string
	Front LayoutID
	Back  LayoutID
}

// Overrides are the user's customizations from the customize panel.
// Empty fields keep the template's value.
type Overrides struct {
	FontFamily  string `json:"fontFamily,omitempty" query:"font"`
	FontSize    int    `json:"fontSize,omitempty" query:"size"`
	TextColor   string `json:"textColor,omitempty" query:"text"`
	AccentColor string `json:"accentColor,omitempty" query:"accent"`
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Package designs suggests free-form card designs. It stands in for a
// generative design model: each design draws a premium color theme and a
// random combination of layout, decoration, font and weight for both faces.
// Design records that arrive from outside are normalized into the closed
// DesignSide type before anything renders them.
package designs

// Layout names a face arrangement.
type Layout string

// Layouts understood by the design renderer.
const (
	LayoutLeftAlign         Layout = "left-align"
	LayoutCentered          Layout = "centered"
	LayoutSplit             Layout = "split"
	LayoutModern            Layout = "modern"
	LayoutLogoCentricFront  Layout = "logo-centric-front"
	LayoutInfoGridBack      Layout = "info-grid-back"
	LayoutElegantCurve      Layout = "elegant-curve"
	LayoutMinimalBorderLeft Layout = "minimal-border-left"
)

// Decoration is an overlay drawn behind the face content.
type Decoration string

// Decorations understood by the design renderer.
const (
	DecorationNone          Decoration = "none"
	DecorationOverlayGlow   Decoration = "overlay-glow"
	DecorationCornerShape   Decoration = "corner-shape"
	DecorationAbstractBlobs Decoration = "abstract-blobs"
	DecorationSubtlePattern Decoration = "subtle-pattern"
)

// Font weights.
const (
	WeightNormal = "normal"
	WeightMedium = "medium"
	WeightBold   = "bold"
)

// Border styles.
const (
	BorderNone   = "none"
	BorderSolid  = "solid"
	BorderDashed = "dashed"
)

// DesignSide is the complete, validated configuration of one face.
type DesignSide struct {
	BgStyle     string     `json:"bgStyle"`
	BgColors    []string   `json:"bgColors"`
	TextColor   string     `json:"textColor"`
	AccentColor string     `json:"accentColor"`
	Layout      Layout     `json:"layout"`
	Decoration  Decoration `json:"decoration"`
	FontWeight  string     `json:"fontWeight"`
	FontFamily  string     `json:"fontFamily"`
	BorderStyle string     `json:"borderStyle"`
}

// Design is one suggested front/back pair.
type Design struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Front DesignSide `json:"front"`
	Back  DesignSide `json:"back"`
}

// Theme is a curated color scheme for both faces.
type Theme struct {
	Name        string
	FrontBg     []string
	FrontAccent string
	BackBg      []string
	BackAccent  string
}

// RawDesign is an untyped design record as decoded from JSON.
type RawDesign map[string]any

// GenerateRequest is the body of POST /api/designs.
type GenerateRequest struct {
	// Count is how many designs to suggest. Zero means DefaultCount.
	Count int `json:"count" validate:"gte=0,lte=100"`
}

// NormalizeRequest is the body of POST /api/designs/normalize.
type NormalizeRequest struct {
	Designs []RawDesign `json:"designs" validate:"required,max=200"`
}

package designs

import (
	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
	"github.com/keyxmakerx/cardstudio/internal/sanitize"
)

// Defaults applied to missing or unknown side fields.
const (
	DefaultBgStyle    = cardstyle.BgSolid
	DefaultLayout     = LayoutLogoCentricFront
	DefaultDecoration = DecorationNone
	DefaultWeight     = WeightNormal
	DefaultFont       = "'Poppins', sans-serif"
	DefaultBorder     = BorderNone
)

// NormalizeSide builds a DesignSide from an untyped record. Unknown enum
// values and malformed colors fall back to the defaults. Text color is
// always recomputed from the primary background so it stays readable.
func NormalizeSide(raw map[string]any, defaultAccent string) DesignSide {
	side := DesignSide{
		BgStyle:     DefaultBgStyle,
		BgColors:    []string{cardstyle.DefaultPrimary, cardstyle.DefaultSecondary},
		AccentColor: defaultAccent,
		Layout:      DefaultLayout,
		Decoration:  DefaultDecoration,
		FontWeight:  DefaultWeight,
		FontFamily:  DefaultFont,
		BorderStyle: DefaultBorder,
	}

	if v := stringField(raw, "bgStyle"); knownBgStyles[v] {
		side.BgStyle = v
	}
	if colors := colorList(raw, "bgColors"); len(colors) > 0 {
		side.BgColors = colors
	}
	if v := stringField(raw, "accentColor"); cardstyle.IsHexColor(v) {
		side.AccentColor = v
	}
	if v := Layout(stringField(raw, "layout")); knownLayouts[v] {
		side.Layout = v
	}
	if v := Decoration(stringField(raw, "decoration")); knownDecorations[v] {
		side.Decoration = v
	}
	if v := stringField(raw, "fontWeight"); knownWeights[v] {
		side.FontWeight = v
	}
	if v := sanitize.FontFamily(stringField(raw, "fontFamily")); v != "" {
		side.FontFamily = v
	}
	if v := stringField(raw, "borderStyle"); knownBorders[v] {
		side.BorderStyle = v
	}

	side.TextColor = cardstyle.ContrastColor(cardstyle.PrimaryBackground(side.BgColors))
	return side
}

// stringField returns m[key] if it is a string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// objectField returns m[key] if it is a JSON object, else an empty map.
func objectField(m map[string]any, key string) map[string]any {
	if obj, ok := m[key].(map[string]any); ok {
		return obj
	}
	if obj, ok := m[key].(RawDesign); ok {
		return obj
	}
	return map[string]any{}
}

// colorList returns the valid #RRGGBB entries of the array m[key].
func colorList(m map[string]any, key string) []string {
	var items []string
	switch v := m[key].(type) {
	case []any:
		for _, it := range v {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = v
	}

	var out []string
	for _, c := range items {
		if cardstyle.IsHexColor(c) {
			out = append(out, c)
		}
	}
	return out
}

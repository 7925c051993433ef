package cardstyle

import "fmt"

// Background styles a side config can request.
const (
	BgSolid    = "solid"
	BgGradient = "gradient"
	BgRadial   = "radial"
)

// Fallback colors when a background list is empty.
const (
	DefaultPrimary   = "#ffffff"
	DefaultSecondary = "#f0f0f0"
)

// PrimaryBackground returns the first background color, or DefaultPrimary.
// Text contrast is always resolved against this color.
func PrimaryBackground(colors []string) string {
	if len(colors) == 0 || colors[0] == "" {
		return DefaultPrimary
	}
	return colors[0]
}

// BackgroundCSS returns the inline CSS declaration for a card background.
// A gradient whose second stop is missing repeats the first color. An empty
// list falls back to DefaultPrimary and DefaultSecondary. Unknown styles
// render as solid.
func BackgroundCSS(style string, colors []string) string {
	a, b := DefaultPrimary, DefaultSecondary
	if len(colors) > 0 {
		a = PrimaryBackground(colors)
		b = a
		if len(colors) > 1 && colors[1] != "" {
			b = colors[1]
		}
	}

	switch style {
	case BgGradient:
		return fmt.Sprintf("background: linear-gradient(135deg, %s, %s);", a, b)
	case BgRadial:
		return fmt.Sprintf("background: radial-gradient(circle, %s, %s);", a, b)
	default:
		return fmt.Sprintf("background-color: %s;", a)
	}
}

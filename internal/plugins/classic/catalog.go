package classic

// The catalogs below are read-only. Generate cycles through each one with
// its own modulus, so a (palette, layout, font) triple repeats only every
// lcm(len(palettes), len(pairings), len(fonts)) templates.

var palettes = [...]Palette{
	{
		Name:      "Dark Teal & Gold",
		BgDark:    []string{"#0a192f", "#1a2f3e"},
		TextLight: "#FFFFFF",
		Accent:    "#d4af37",
		BgLight:   []string{"#FFFFFF"},
		TextDark:  "#0a192f",
	},
	{
		Name:      "Clean White",
		BgDark:    []string{"#FFFFFF", "#FFFFFF"},
		TextLight: "#222222",
		Accent:    "#007aff",
		BgLight:   []string{"#F4F4F4", "#F4F4F4"},
		TextDark:  "#222222",
	},
	{
		Name:      "Warm Neutral",
		BgDark:    []string{"#F3EFE0", "#F3EFE0"},
		TextLight: "#5D4037",
		Accent:    "#8D6E63",
		BgLight:   []string{"#FFFFFF"},
		TextDark:  "#5D4037",
	},
	{
		Name:      "Maroon & White",
		BgDark:    []string{"#5D001E", "#5D001E"},
		TextLight: "#FFFFFF",
		Accent:    "#E3E2DF",
		BgLight:   []string{"#FFFFFF"},
		TextDark:  "#3D3D3D",
	},
	{
		Name:      "Cream & Bronze",
		BgDark:    []string{"#F5EFE6", "#F5EFE6"},
		TextLight: "#4E3629",
		Accent:    "#B08968",
		BgLight:   []string{"#FFFFFF"},
		TextDark:  "#4E3629",
	},
}

var pairings = [...]LayoutPairing{
	{Name: "Corporate Sidebar", Front: LayoutFrontLogoLeft, Back: LayoutBackSidebarRight},
	{Name: "Elegant Curves", Front: LayoutFrontLogoCentric, Back: LayoutBackElegantCurves},
	{Name: "Minimalist Vertical", Front: LayoutFrontMinimalVertical, Back: LayoutBackSidebarLeft},
	{Name: "Classic Pattern", Front: LayoutFrontPatternBand, Back: LayoutBackInfoStandard},
}

var fonts = [...]string{
	"'Inter', sans-serif",
	"'Merriweather', serif",
	"'Poppins', sans-serif",
}

const (
	// verticalPairing is the pairing forced onto every third template.
	verticalPairing = 2

	// verticalPairingName marks a pairing as vertical.
	verticalPairingName = "Minimalist Vertical"

	// patternPairingName gives the front face the damask pattern.
	patternPairingName = "Classic Pattern"

	// verticalEvery forces verticalPairing when i%verticalEvery == 0.
	verticalEvery = 3
)

// PaletteCount, PairingCount and FontCount are the catalog sizes.
const (
	PaletteCount = len(palettes)
	PairingCount = len(pairings)
	FontCount    = len(fonts)
)

// PaletteAt returns a copy of palette i mod PaletteCount.
func PaletteAt(i int) Palette {
	p := palettes[mod(i, PaletteCount)]
	p.BgDark = cloneColors(p.BgDark)
	p.BgLight = cloneColors(p.BgLight)
	return p
}

// PairingAt returns layout pairing i mod PairingCount.
func PairingAt(i int) LayoutPairing {
	return pairings[mod(i, PairingCount)]
}

// FontAt returns font i mod FontCount.
func FontAt(i int) string {
	return fonts[mod(i, FontCount)]
}

// Fonts returns the font catalog in order.
func Fonts() []string {
	out := make([]string, FontCount)
	copy(out, fonts[:])
	return out
}

// mod is i mod n for non-negative results.
func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func cloneColors(colors []string) []string {
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}

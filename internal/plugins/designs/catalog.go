package designs

var themes = [...]Theme{
	{
		Name:        "Dark & Gold",
		FrontBg:     []string{"#0a192f", "#0a192f"},
		FrontAccent: "#d4af37",
		BackBg:      []string{"#ffffff", "#ffffff"},
		BackAccent:  "#0a192f",
	},
	{
		Name:        "Minimalist Contractor",
		FrontBg:     []string{"#2d3748", "#2d3748"},
		FrontAccent: "#e2e8f0",
		BackBg:      []string{"#ffffff", "#ffffff"},
		BackAccent:  "#2d3748",
	},
	{
		Name:        "Corporate Blue",
		FrontBg:     []string{"#ffffff", "#ffffff"},
		FrontAccent: "#2563eb",
		BackBg:      []string{"#f4f4f5", "#f4f4f5"},
		BackAccent:  "#2563eb",
	},
	{
		Name:        "Light & Floral",
		FrontBg:     []string{"#ffffff", "#ffffff"},
		FrontAccent: "#f59e0b",
		BackBg:      []string{"#f9fafb", "#f9fafb"},
		BackAccent:  "#f59e0b",
	},
	{
		Name:        "Bold Orange",
		FrontBg:     []string{"#f97316", "#f97316"},
		FrontAccent: "#ffffff",
		BackBg:      []string{"#ffffff", "#ffffff"},
		BackAccent:  "#f97316",
	},
	{
		Name:        "Elegant Teal",
		FrontBg:     []string{"#0d9488", "#0d9488"},
		FrontAccent: "#f0abfc",
		BackBg:      []string{"#f0fdfa", "#f0fdfa"},
		BackAccent:  "#0d9488",
	},
}

// generatedLayouts are the layouts the generator picks from. left-align is
// only reachable through normalized input.
var generatedLayouts = []Layout{
	LayoutLogoCentricFront,
	LayoutInfoGridBack,
	LayoutElegantCurve,
	LayoutMinimalBorderLeft,
	LayoutModern,
	LayoutSplit,
	LayoutCentered,
}

// frontLayouts and backLayouts keep each face-specific layout off the
// opposite face.
var (
	frontLayouts = without(generatedLayouts, LayoutInfoGridBack)
	backLayouts  = without(generatedLayouts, LayoutLogoCentricFront)
)

var generatedDecorations = []Decoration{
	DecorationNone,
	DecorationOverlayGlow,
	DecorationCornerShape,
	DecorationSubtlePattern,
}

// backDecorations drops the glow, which washes out on light backs.
var backDecorations = without(generatedDecorations, DecorationOverlayGlow)

var fontFamilies = []string{
	"'Inter', sans-serif",
	"'Poppins', sans-serif",
	"'Merriweather', serif",
}

var fontWeights = []string{WeightNormal, WeightMedium, WeightBold}

var frontBgStyles = []string{"solid", "gradient"}

// Closed value sets used by normalization.
var (
	knownLayouts = setOf(
		LayoutLeftAlign, LayoutCentered, LayoutSplit, LayoutModern,
		LayoutLogoCentricFront, LayoutInfoGridBack, LayoutElegantCurve, LayoutMinimalBorderLeft,
	)
	knownDecorations = setOf(
		DecorationNone, DecorationOverlayGlow, DecorationCornerShape,
		DecorationAbstractBlobs, DecorationSubtlePattern,
	)
	knownBgStyles = setOf("solid", "gradient", "radial")
	knownWeights  = setOf(WeightNormal, WeightMedium, WeightBold)
	knownBorders  = setOf(BorderNone, BorderSolid, BorderDashed)
)

// Themes returns a copy of the theme catalog.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	for i, t := range themes {
		t.FrontBg = cloneColors(t.FrontBg)
		t.BackBg = cloneColors(t.BackBg)
		out[i] = t
	}
	return out
}

func without[T comparable](items []T, drop T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it != drop {
			out = append(out, it)
		}
	}
	return out
}

func setOf[T comparable](items ...T) map[T]bool {
	m := make(map[T]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

func cloneColors(colors []string) []string {
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}

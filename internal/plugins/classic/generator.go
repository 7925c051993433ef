package classic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
)

// idPrefix starts every classic template ID.
const idPrefix = "classic-"

// Generate returns count templates. Template i takes palette i, layout
// pairing i and font i from their catalogs (each modulo its own size),
// except that every third template (i%3 == 0) uses the vertical pairing.
// A negative count is treated as zero.
func Generate(count int) []Template {
	if count < 0 {
		count = 0
	}

	templates := make([]Template, 0, count)
	for i := 0; i < count; i++ {
		templates = append(templates, templateAt(i))
	}
	return templates
}

// templateAt builds template i.
func templateAt(i int) Template {
	palette := PaletteAt(i)
	pairing := PairingAt(i)
	font := FontAt(i)

	if i%verticalEvery == 0 {
		pairing = pairings[verticalPairing]
	}

	orientation := cardstyle.Horizontal
	if pairing.Name == verticalPairingName {
		orientation = cardstyle.Vertical
	}

	frontPattern := PatternNone
	if pairing.Name == patternPairingName {
		frontPattern = PatternDamask
	}

	return Template{
		ID:   TemplateID(i),
		Name: palette.Name + " " + pairing.Name,
		Front: SideConfig{
			Layout:      pairing.Front,
			BgStyle:     cardstyle.BgSolid,
			BgColors:    palette.BgDark,
			TextColor:   palette.TextLight,
			AccentColor: palette.Accent,
			FontFamily:  font,
			Orientation: orientation,
			Pattern:     frontPattern,
		},
		Back: SideConfig{
			Layout:      pairing.Back,
			BgStyle:     cardstyle.BgSolid,
			BgColors:    palette.BgLight,
			TextColor:   palette.TextDark,
			AccentColor: palette.BgDark[0],
			FontFamily:  font,
			Orientation: orientation,
			Pattern:     PatternNone,
		},
	}
}

// TemplateID formats the ID of template i, zero-padded to three digits.
func TemplateID(i int) string {
	return fmt.Sprintf("%s%03d", idPrefix, i)
}

// ParseTemplateID returns the generation index encoded in id.
func ParseTemplateID(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, idPrefix)
	if !ok || len(digits) < 3 {
		return 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || TemplateID(i) != id {
		return 0, false
	}
	return i, true
}

// Lookup returns the template with the given ID, as produced by Generate.
// Templates are independent of count, so template i is the same whether
// the gallery holds 10 or 500 entries.
func Lookup(id string) (Template, bool) {
	i, ok := ParseTemplateID(id)
	if !ok {
		return Template{}, false
	}
	return templateAt(i), true
}

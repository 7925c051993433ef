package classic

import (
	"fmt"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
	"github.com/keyxmakerx/cardstudio/internal/sanitize"
)

// Limits for the customize panel's font size slider.
const (
	MinFontSize = 6
	MaxFontSize = 32
)

// Validate checks that override values are usable in inline styles.
func (o Overrides) Validate() error {
	if o.TextColor != "" && !cardstyle.IsHexColor(o.TextColor) {
		return fmt.Errorf("text color %q must be #RRGGBB", o.TextColor)
	}
	if o.AccentColor != "" && !cardstyle.IsHexColor(o.AccentColor) {
		return fmt.Errorf("accent color %q must be #RRGGBB", o.AccentColor)
	}
	if o.FontFamily != "" && sanitize.FontFamily(o.FontFamily) == "" {
		return fmt.Errorf("font family %q contains unsupported characters", o.FontFamily)
	}
	if o.FontSize != 0 && (o.FontSize < MinFontSize || o.FontSize > MaxFontSize) {
		return fmt.Errorf("font size must be between %d and %d", MinFontSize, MaxFontSize)
	}
	return nil
}

// ApplyOverrides returns a copy of side with every non-empty override set.
// The input is not modified.
func ApplyOverrides(side SideConfig, o Overrides) SideConfig {
	out := side
	out.BgColors = cloneColors(side.BgColors)
	if o.FontFamily != "" {
		out.FontFamily = o.FontFamily
	}
	if o.FontSize != 0 {
		out.FontSize = o.FontSize
	}
	if o.TextColor != "" {
		out.TextColor = o.TextColor
	}
	if o.AccentColor != "" {
		out.AccentColor = o.AccentColor
	}
	return out
}

// Customize applies overrides to both faces of a template.
func Customize(t Template, o Overrides) Template {
	t.Front = ApplyOverrides(t.Front, o)
	t.Back = ApplyOverrides(t.Back, o)
	return t
}

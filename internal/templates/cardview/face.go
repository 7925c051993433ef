// Package cardview renders business card faces as HTML. Classic templates
// and suggested designs are both converted to a Face, and a registry maps
// each layout name to the function that draws it.
package cardview

import (
	"fmt"
	"strings"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
	"github.com/keyxmakerx/cardstudio/internal/sanitize"
)

// Face is everything needed to draw one side of a card.
type Face struct {
	Layout      string
	Orientation string
	BgStyle     string
	BgColors    []string
	TextColor   string
	AccentColor string
	FontFamily  string
	FontWeight  string
	FontSize    int
	Pattern     string
	Decoration  string
	BorderStyle string
}

// Contact is the text printed on a card.
type Contact struct {
	Name    string
	Title   string
	Company string
	Email   string
	Phone   string
	Website string
	Address string
	Logo    string

	initials string
}

// FromSide converts a classic template face. Its text color already
// includes any override; an empty one is resolved against the background.
func FromSide(s classic.SideConfig) Face {
	text := s.TextColor
	if !cardstyle.IsHexColor(text) {
		text = s.ReadableTextColor()
	}
	return Face{
		Layout:      string(s.Layout),
		Orientation: s.Orientation,
		BgStyle:     s.BgStyle,
		BgColors:    s.BgColors,
		TextColor:   text,
		AccentColor: s.AccentColor,
		FontFamily:  s.FontFamily,
		FontSize:    s.FontSize,
		Pattern:     s.Pattern,
	}
}

// FromDesignSide converts a suggested design face. Design text always uses
// the contrast color of the primary background.
func FromDesignSide(s designs.DesignSide) Face {
	return Face{
		Layout:      string(s.Layout),
		Orientation: cardstyle.Horizontal,
		BgStyle:     s.BgStyle,
		BgColors:    s.BgColors,
		TextColor:   cardstyle.ContrastColor(cardstyle.PrimaryBackground(s.BgColors)),
		AccentColor: s.AccentColor,
		FontFamily:  s.FontFamily,
		FontWeight:  s.FontWeight,
		Decoration:  string(s.Decoration),
		BorderStyle: s.BorderStyle,
	}
}

// Vertical reports whether the face is drawn in portrait.
func (f Face) Vertical() bool {
	return f.Orientation == cardstyle.Vertical
}

// text returns the text color, resolving it against the background when
// it is not a valid color.
func (f Face) text() string {
	if cardstyle.IsHexColor(f.TextColor) {
		return f.TextColor
	}
	return cardstyle.ContrastColor(cardstyle.PrimaryBackground(colorsOnly(f.BgColors)))
}

// accent returns the accent color, or the text color when none is set.
func (f Face) accent() string {
	if cardstyle.IsHexColor(f.AccentColor) {
		return f.AccentColor
	}
	return f.text()
}

// Style returns the inline CSS for the face container.
func (f Face) Style() string {
	var b strings.Builder
	b.WriteString(cardstyle.BackgroundCSS(f.BgStyle, colorsOnly(f.BgColors)))
	b.WriteString(" ")
	b.WriteString(cardstyle.FontCSS(sanitize.FontFamily(f.FontFamily), f.text(), fontWeight(f.FontWeight)))
	fmt.Fprintf(&b, " font-size: %dpx; line-height: %s;",
		cardstyle.FontSize(f.Orientation, f.FontSize), cardstyle.LineHeight(f.Orientation))
	if f.BorderStyle == designs.BorderSolid || f.BorderStyle == designs.BorderDashed {
		fmt.Fprintf(&b, " border: 2px %s %s;", f.BorderStyle, f.accent())
	}
	return b.String()
}

// colorsOnly drops anything that is not a #RRGGBB color so it cannot
// reach the style attribute.
func colorsOnly(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if cardstyle.IsHexColor(c) {
			out = append(out, c)
		}
	}
	return out
}

// fontWeight maps design weights to CSS values.
func fontWeight(w string) string {
	switch w {
	case designs.WeightMedium:
		return "500"
	case designs.WeightBold:
		return "700"
	default:
		return ""
	}
}

// withPlaceholders fills the name, title and company shown on an empty card.
// Initials come from the company as entered.
func (c Contact) withPlaceholders() Contact {
	c.initials = cardstyle.Initials(c.Company, initialsFallback)
	if c.Name == "" {
		c.Name = "Your Name"
	}
	if c.Title == "" {
		c.Title = "Job Title"
	}
	if c.Company == "" {
		c.Company = "Company Name"
	}
	return c
}

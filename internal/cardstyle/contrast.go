// Package cardstyle holds the pure style computations behind every card face:
// contrast text color, background CSS, and orientation-dependent typography.
// Nothing here does I/O or keeps state; all functions are safe for
// concurrent use.
package cardstyle

import (
	"math"
	"regexp"
	"strconv"
)

// Text colors returned by ContrastColor.
const (
	Black = "#000000"
	White = "#ffffff"
)

// hexColorRe matches RRGGBB with an optional leading '#', case-insensitive.
var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// strictHexRe is the canonical stored form: '#' followed by six hex digits.
var strictHexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a "#RRGGBB" color.
func IsHexColor(s string) bool {
	return strictHexRe.MatchString(s)
}

// ParseHex returns the 8-bit channels of a "#RRGGBB" (or "RRGGBB") color.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	m := hexColorRe.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, false
	}
	ch := func(s string) uint8 {
		v, _ := strconv.ParseUint(s, 16, 8)
		return uint8(v)
	}
	return ch(m[1]), ch(m[2]), ch(m[3]), true
}

// linearize converts one sRGB channel in [0,1] to linear light.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of a hex color in [0,1].
// The second result is false when the color cannot be parsed.
func Luminance(hex string) (float64, bool) {
	r, g, b, ok := ParseHex(hex)
	if !ok {
		return 0, false
	}
	rl := linearize(float64(r) / 255)
	gl := linearize(float64(g) / 255)
	bl := linearize(float64(b) / 255)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl, true
}

// ContrastColor picks the text color for a background: Black when the
// background luminance is above 0.5, White otherwise. Unparseable input
// yields Black.
//
// NOTE: the 0.5 cut-off puts white text on mid-tones such as #777777,
// which the usual WCAG guidance would render in black. Card output depends
// on this exact mapping, so keep it.
func ContrastColor(hex string) string {
	l, ok := Luminance(hex)
	if !ok {
		return Black
	}
	if l > 0.5 {
		return Black
	}
	return White
}

package cardstyle

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Orientations of a card face.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

const (
	defaultFontFamily = "'Poppins', sans-serif"
	defaultFontWeight = "normal"
)

// FontCSS returns font-family, color and font-weight declarations, filling
// in the Poppins family and normal weight when they are empty.
func FontCSS(family, color, weight string) string {
	if family == "" {
		family = defaultFontFamily
	}
	if weight == "" {
		weight = defaultFontWeight
	}
	return fmt.Sprintf("font-family: %s; color: %s; font-weight: %s;", family, color, weight)
}

// FontSize returns the base font size in pixels for an orientation.
// A positive override wins.
func FontSize(orientation string, override int) int {
	if override > 0 {
		return override
	}
	if orientation == Vertical {
		return 10
	}
	return 14
}

// LineHeight returns the CSS line-height for an orientation.
func LineHeight(orientation string) string {
	if orientation == Vertical {
		return "1.4"
	}
	return "1.5"
}

// Initials returns the first two characters of company upper-cased, or
// fallback when company is blank.
func Initials(company, fallback string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return fallback
	}
	if utf8.RuneCountInString(company) > 2 {
		_, size1 := utf8.DecodeRuneInString(company)
		_, size2 := utf8.DecodeRuneInString(company[size1:])
		company = company[:size1+size2]
	}
	return strings.ToUpper(company)
}

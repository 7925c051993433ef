// Package sanitize cleans user-entered card data before it is stored or
// rendered. Contact fields are reduced to plain text with bluemonday's
// strict policy, font names are restricted to characters that are safe
// inside an inline style, and logos must be base64 raster data URLs.
package sanitize

import (
	"encoding/base64"
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton strict policy: it removes every element and
// attribute and keeps only text.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text strips all markup from input and returns trimmed plain text. Control
// characters other than newline are dropped. bluemonday escapes the text it
// keeps, so the result is unescaped again; angle brackets are then removed
// so escaped markup such as "&lt;script&gt;" cannot come back as a tag in
// API responses.
func Text(input string) string {
	if input == "" {
		return ""
	}
	cleaned := html.UnescapeString(getPolicy().Sanitize(input))
	cleaned = strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r == '<' || r == '>' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
	return strings.TrimSpace(cleaned)
}

// fontFamilyRe allows CSS font-family lists such as "'Inter', sans-serif".
var fontFamilyRe = regexp.MustCompile(`^[A-Za-z0-9 '",\-]+$`)

// FontFamily returns the trimmed font-family list, or "" when it contains
// characters that could break out of a style attribute.
func FontFamily(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || len(input) > 100 || !fontFamilyRe.MatchString(input) {
		return ""
	}
	return input
}

// allowedLogoTypes are the raster image types accepted as logo data URLs.
// SVG is excluded because it can carry script.
var allowedLogoTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// LogoDataURL reports whether input is a base64 data URL of an allowed
// raster type whose decoded size is at most maxBytes.
func LogoDataURL(input string, maxBytes int) bool {
	rest, ok := strings.CutPrefix(input, "data:")
	if !ok {
		return false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return false
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok || !allowedLogoTypes[strings.ToLower(mime)] {
		return false
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return false
	}
	return len(decoded) > 0 && len(decoded) <= maxBytes
}

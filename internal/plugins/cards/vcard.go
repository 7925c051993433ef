package cards

import (
	"strings"
	"unicode/utf8"
)

// maxLineOctets is the folding limit for content lines.
const maxLineOctets = 75

// vcardEscaper escapes TEXT values (RFC 2426 section 4).
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// FormatVCard renders a card as a vCard 3.0 object with CRLF line endings.
// Empty optional fields are omitted.
func FormatVCard(d CardData) string {
	var b strings.Builder
	line := func(name, value string) {
		b.WriteString(fold(name + ":" + value))
		b.WriteString("\r\n")
	}

	family, given := splitName(d.Name)

	line("BEGIN", "VCARD")
	line("VERSION", "3.0")
	line("N", escape(family)+";"+escape(given)+";;;")
	line("FN", escape(d.Name))
	if d.Company != "" {
		line("ORG", escape(d.Company))
	}
	if d.Title != "" {
		line("TITLE", escape(d.Title))
	}
	if d.Email != "" {
		line("EMAIL;TYPE=INTERNET", escape(d.Email))
	}
	if d.Phone != "" {
		line("TEL;TYPE=WORK,VOICE", escape(d.Phone))
	}
	if d.Website != "" {
		line("URL", escape(d.Website))
	}
	if d.Address != "" {
		line("ADR;TYPE=WORK", ";;"+escape(d.Address)+";;;;")
	}
	line("END", "VCARD")

	return b.String()
}

func escape(s string) string {
	return vcardEscaper.Replace(s)
}

// splitName treats the last word as the family name.
func splitName(name string) (family, given string) {
	name = strings.TrimSpace(name)
	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return name, ""
	}
	return name[i+1:], strings.TrimSpace(name[:i])
}

// fold splits a content line into chunks of at most maxLineOctets octets.
// Continuation lines start with a single space and never split a rune.
func fold(s string) string {
	if len(s) <= maxLineOctets {
		return s
	}

	var b strings.Builder
	limit := maxLineOctets
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		b.WriteString(s[:cut])
		b.WriteString("\r\n ")
		s = s[cut:]
		// The leading space counts toward the next line.
		limit = maxLineOctets - 1
	}
	b.WriteString(s)
	return b.String()
}

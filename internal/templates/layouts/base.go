package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// navLink is one entry in the top navigation.
type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/", Label: "Classic Templates"},
	{Href: "/designs", Label: "AI Designs"},
}

// fontsURL loads the card font families offered by the catalogs.
const fontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;700&family=Merriweather:wght@400;700&family=Poppins:wght@400;500;700&display=swap"

// stylesheet holds the page chrome. Card faces carry their own inline styles.
const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:'Inter',sans-serif;background:#f4f5f7;color:#1f2933}
header{display:flex;gap:1.5rem;align-items:center;padding:1rem 2rem;background:#111827}
header a{color:#d1d5db;text-decoration:none;font-weight:500}
header a.active{color:#ffffff;border-bottom:2px solid #d4af37}
header .brand{color:#ffffff;font-weight:700;margin-right:auto}
main{padding:2rem}
.gallery{display:grid;grid-template-columns:repeat(auto-fill,minmax(760px,1fr));gap:2rem}
.card-pair{background:#ffffff;border-radius:12px;padding:1rem;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.card-pair.selected{outline:3px solid #d4af37}
.card-pair h2{font-size:1rem;margin:0 0 .75rem}
.card-faces{display:flex;gap:1rem;align-items:flex-start}
.card-face{position:relative;overflow:hidden;border-radius:8px;width:350px;height:200px;flex-shrink:0}
.card-face--vertical{width:200px;height:350px}
.card-face .content{position:relative;z-index:1;height:100%}
.error{max-width:32rem;margin:4rem auto;text-align:center}
.error h1{font-size:4rem;margin:0}
`

// Base wraps content in the HTML document shell with navigation.
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<meta name="csrf-token" content="%s">`+
				`<title>%s | Card Studio</title>`+
				`<link rel="stylesheet" href="%s">`+
				`<style>%s</style></head><body>`,
			templ.EscapeString(GetCSRFToken(ctx)),
			templ.EscapeString(title),
			templ.EscapeString(fontsURL),
			stylesheet,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<header><span class="brand">Card Studio</span>`); err != nil {
			return err
		}
		for _, l := range navLinks {
			class := ""
			if IsActive(ctx, l.Href) {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<a href="%s"%s>%s</a>`, l.Href, class, templ.EscapeString(l.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</header><main>`); err != nil {
			return err
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

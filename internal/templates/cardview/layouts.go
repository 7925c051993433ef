package cardview

import "github.com/keyxmakerx/cardstudio/internal/cardstyle"

// --- Classic front layouts ---

func renderLogoCentric(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;flex-direction:column;align-items:center;justify-content:center;height:100%%;text-align:center;padding:24px">`)
	logo(fw, f, c, 64)
	heading(fw, "h3", "font-size:1.6em;font-weight:600;margin-top:16px", c.Company)
	fw.printf(`</div>`)
}

func renderMinimalVertical(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;flex-direction:column;align-items:flex-start;justify-content:space-between;height:100%%;padding:24px">`)
	logo(fw, f, c, 40)
	heading(fw, "h3", "font-size:1.4em;font-weight:700;text-transform:uppercase;writing-mode:vertical-rl;transform:rotate(180deg);letter-spacing:2px;color:"+f.accent(), c.Company)
	fw.printf(`</div>`)
}

func renderLogoLeft(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;align-items:center;gap:16px;height:100%%;padding:32px">`)
	if c.Logo != "" {
		logo(fw, f, c, 64)
	} else {
		// Solid badge so the initials read against the accent.
		fw.printf(`<div style="width:64px;height:64px;flex-shrink:0;border-radius:6px;display:flex;align-items:center;justify-content:center;background:%s;color:%s;font-weight:700;font-size:1.6em">`,
			f.accent(), cardstyle.ContrastColor(f.accent()))
		fw.text(c.initials)
		fw.printf(`</div>`)
	}
	heading(fw, "h3", "font-size:1.6em;font-weight:600", c.Company)
	fw.printf(`</div>`)
}

func renderPatternBand(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="position:absolute;left:0;right:0;bottom:0;height:33%%;opacity:0.5;background:%s"></div>`, f.accent())
	fw.printf(`<div style="position:relative;display:flex;flex-direction:column;align-items:center;justify-content:center;height:100%%;text-align:center;padding:24px">`)
	logo(fw, f, c, 64)
	heading(fw, "h3", "font-size:1.6em;font-weight:600;margin-top:16px", c.Company)
	heading(fw, "p", "font-size:0.85em;opacity:0.8", c.Title)
	fw.printf(`</div>`)
}

// --- Classic back layouts ---

func renderSidebarRight(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;height:100%%">`)
	fw.printf(`<div style="flex:1;padding:24px;display:flex;flex-direction:column;justify-content:center">`)
	heading(fw, "h3", "font-size:1.3em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.85em;margin-bottom:12px;color:"+f.accent(), c.Title)
	contactLines(fw, f, c, "left")
	fw.printf(`</div><div style="width:30%%;background:%s"></div></div>`, f.accent())
}

func renderSidebarLeft(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;height:100%%">`)
	fw.printf(`<div style="width:8px;background:%s"></div>`, f.accent())
	fw.printf(`<div style="flex:1;padding:20px;display:flex;flex-direction:column;justify-content:space-between">`)
	fw.printf(`<div>`)
	heading(fw, "h3", "font-size:1.3em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.85em;opacity:0.8", c.Title)
	fw.printf(`</div>`)
	contactLines(fw, f, c, "left")
	fw.printf(`</div></div>`)
}

func renderElegantCurves(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<svg style="position:absolute;top:0;left:0;width:66%%;height:40%%" viewBox="0 0 100 100" preserveAspectRatio="none"><path d="M 0,0 L 100,0 Q 50,50 100,100 L 0,100 Z" fill="%s"/></svg>`, f.accent())
	fw.printf(`<svg style="position:absolute;bottom:0;right:0;width:66%%;height:40%%" viewBox="0 0 100 100" preserveAspectRatio="none"><path d="M 100,100 L 0,100 Q 50,50 0,0 L 100,0 Z" fill="%s"/></svg>`, f.accent())
	fw.printf(`<div style="position:relative;height:100%%;padding:24px;display:flex;flex-direction:column;justify-content:space-between;text-align:right">`)
	fw.printf(`<div>`)
	heading(fw, "h3", "font-size:1.3em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.85em;opacity:0.7", c.Title)
	fw.printf(`</div>`)
	contactLines(fw, f, c, "right")
	fw.printf(`</div>`)
}

func renderInfoStandard(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="height:100%%;padding:24px;display:flex;flex-direction:column;justify-content:center">`)
	heading(fw, "h3", "font-size:1.4em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.9em;color:"+f.accent(), c.Title)
	heading(fw, "p", "font-size:0.85em;opacity:0.8;margin-bottom:12px", c.Company)
	contactLines(fw, f, c, "left")
	fw.printf(`</div>`)
}

// --- Design layouts ---

func renderLeftAlign(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="height:100%%;padding:24px;display:flex;flex-direction:column;justify-content:space-between">`)
	fw.printf(`<div>`)
	heading(fw, "h3", "font-size:1.5em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.9em;color:"+f.accent(), c.Title)
	fw.printf(`</div>`)
	contactLines(fw, f, c, "left")
	fw.printf(`</div>`)
}

func renderCentered(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="height:100%%;padding:24px;display:flex;flex-direction:column;align-items:center;justify-content:center;text-align:center;gap:8px">`)
	heading(fw, "h3", "font-size:1.5em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.9em;color:"+f.accent(), c.Title)
	contactLines(fw, f, c, "center")
	fw.printf(`</div>`)
}

func renderSplit(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="display:flex;height:100%%">`)
	fw.printf(`<div style="width:40%%;display:flex;align-items:center;justify-content:center;border-right:2px solid %s">`, f.accent())
	logo(fw, f, c, 56)
	fw.printf(`</div><div style="flex:1;padding:20px;display:flex;flex-direction:column;justify-content:center">`)
	heading(fw, "h3", "font-size:1.3em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.85em;margin-bottom:8px;color:"+f.accent(), c.Title)
	contactLines(fw, f, c, "left")
	fw.printf(`</div></div>`)
}

func renderModern(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="height:100%%;padding:24px;display:flex;flex-direction:column;justify-content:flex-end">`)
	fw.printf(`<div style="width:48px;height:4px;margin-bottom:12px;background:%s"></div>`, f.accent())
	heading(fw, "h3", "font-size:1.6em;font-weight:800;letter-spacing:-0.5px", c.Name)
	heading(fw, "p", "font-size:0.8em;text-transform:uppercase;letter-spacing:2px;opacity:0.8;margin-bottom:8px", c.Title)
	contactLines(fw, f, c, "left")
	fw.printf(`</div>`)
}

func renderInfoGrid(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="height:100%%;padding:20px;display:grid;grid-template-columns:1fr 1fr;gap:8px;align-content:center">`)
	fw.printf(`<div style="grid-column:1 / -1;border-bottom:1px solid %s;padding-bottom:8px">`, f.accent())
	heading(fw, "h3", "font-size:1.3em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:0.85em;opacity:0.8", c.Title+" · "+c.Company)
	fw.printf(`</div>`)
	for _, v := range []string{c.Phone, c.Email, c.Website, c.Address} {
		if v == "" {
			continue
		}
		fw.printf(`<div style="font-size:0.75em;overflow:hidden;text-overflow:ellipsis">`)
		fw.text(v)
		fw.printf(`</div>`)
	}
	fw.printf(`</div>`)
}

func renderMinimalBorderLeft(fw *faceWriter, f Face, c Contact) {
	fw.printf(`<div style="position:absolute;left:0;top:0;height:100%%;width:8px;background:%s"></div>`, f.accent())
	fw.printf(`<div style="height:100%%;padding:24px 24px 24px 40px;display:flex;flex-direction:column;justify-content:center">`)
	heading(fw, "h3", "font-size:1.8em;font-weight:700", c.Name)
	heading(fw, "p", "font-size:1.05em;margin-bottom:16px;color:"+f.accent(), c.Title)
	contactLines(fw, f, c, "left")
	fw.printf(`</div>`)
}

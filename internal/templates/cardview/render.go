package cardview

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
)

// initialsFallback is shown in place of a logo when the company is blank.
const initialsFallback = "LG"

// faceWriter writes HTML fragments and keeps the first error.
type faceWriter struct {
	w   io.Writer
	err error
}

func (fw *faceWriter) printf(format string, args ...any) {
	if fw.err != nil {
		return
	}
	_, fw.err = fmt.Fprintf(fw.w, format, args...)
}

// text writes s HTML-escaped.
func (fw *faceWriter) text(s string) {
	fw.printf("%s", templ.EscapeString(s))
}

// FaceView renders one card face with the renderer registered for its
// layout.
func FaceView(f Face, c Contact) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fw := &faceWriter{w: w}
		layout, render := rendererFor(f.Layout)

		class := "card-face"
		if f.Vertical() {
			class += " card-face--vertical"
		}
		fw.printf(`<div class="%s" data-layout="%s" style="%s">`,
			class, templ.EscapeString(layout), templ.EscapeString(f.Style()))
		renderDecoration(fw, f)
		fw.printf(`<div class="content">`)
		render(fw, f, c.withPlaceholders())
		fw.printf(`</div></div>`)
		return fw.err
	})
}

// PairView renders a titled front and back pair. Selected pairs are
// highlighted.
func PairView(title string, front, back Face, c Contact, selected bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "card-pair"
		if selected {
			class += " selected"
		}
		if _, err := fmt.Fprintf(w, `<section class="%s"><h2>%s</h2><div class="card-faces">`,
			class, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := FaceView(front, c).Render(ctx, w); err != nil {
			return err
		}
		if err := FaceView(back, c).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

// renderDecoration draws the pattern or decoration behind the content.
func renderDecoration(fw *faceWriter, f Face) {
	accent := f.accent()

	if f.Pattern == classic.PatternDamask {
		fw.printf(`<div style="position:absolute;inset:0;opacity:0.12;background-image:radial-gradient(circle at 10px 10px, %s 2px, transparent 3px),radial-gradient(circle at 30px 30px, %s 4px, transparent 5px);background-size:40px 40px"></div>`,
			accent, accent)
	}

	switch designs.Decoration(f.Decoration) {
	case designs.DecorationSubtlePattern:
		fw.printf(`<div style="position:absolute;inset:0;opacity:0.1;background-image:radial-gradient(circle at 1px 1px, %s 1px, transparent 0);background-size:20px 20px"></div>`, accent)
	case designs.DecorationOverlayGlow:
		fw.printf(`<div style="position:absolute;inset:0;opacity:0.15;pointer-events:none;background:radial-gradient(circle at 30%% 40%%, %s, transparent 70%%)"></div>`, accent)
	case designs.DecorationCornerShape:
		fw.printf(`<div style="position:absolute;top:0;left:0;width:0;height:0;opacity:0.3;border-top:80px solid transparent;border-right:80px solid %s"></div>`, accent)
	case designs.DecorationAbstractBlobs:
		fw.printf(`<div style="position:absolute;top:-30px;right:-30px;width:120px;height:120px;border-radius:50%%;opacity:0.2;background:%s"></div>`, accent)
		fw.printf(`<div style="position:absolute;bottom:-40px;left:-20px;width:100px;height:100px;border-radius:50%%;opacity:0.15;background:%s"></div>`, accent)
	}
}

// logo draws the logo image, or the company initials in an accent badge.
func logo(fw *faceWriter, f Face, c Contact, size int) {
	if strings.HasPrefix(c.Logo, "data:image/") {
		fw.printf(`<img src="%s" alt="Logo" style="width:%dpx;height:%dpx;object-fit:contain">`,
			templ.EscapeString(c.Logo), size, size)
		return
	}
	fw.printf(`<div style="width:%dpx;height:%dpx;border-radius:50%%;border:2px solid %s;display:flex;align-items:center;justify-content:center"><span style="font-weight:700;color:%s">`,
		size, size, f.accent(), f.accent())
	fw.text(c.initials)
	fw.printf(`</span></div>`)
}

// contactLines writes the optional phone, email, website and address rows.
func contactLines(fw *faceWriter, f Face, c Contact, align string) {
	fw.printf(`<div style="display:flex;flex-direction:column;gap:4px;font-size:0.8em;text-align:%s">`, align)
	for _, line := range []struct{ label, value string }{
		{"Phone", c.Phone},
		{"Email", c.Email},
		{"Web", c.Website},
		{"Address", c.Address},
	} {
		if line.value == "" {
			continue
		}
		fw.printf(`<div><span style="color:%s;font-weight:600">%s</span> `, f.accent(), line.label)
		fw.text(line.value)
		fw.printf(`</div>`)
	}
	fw.printf(`</div>`)
}

// heading writes a block element holding escaped text.
func heading(fw *faceWriter, tag, style, s string) {
	fw.printf(`<%s style="margin:0;%s">`, tag, style)
	fw.text(s)
	fw.printf(`</%s>`, tag)
}

package cardview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
)

func render(t *testing.T, f Face, c Contact) string {
	t.Helper()
	var buf bytes.Buffer
	if err := FaceView(f, c).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

var sample = Contact{
	Name:    "Ada Lovelace",
	Title:   "Analyst",
	Company: "Engines",
	Email:   "ada@example.com",
	Phone:   "+44 20 0000",
}

func TestRegistry_CoversEveryLayout(t *testing.T) {
	for _, l := range classic.Layouts {
		if !HasRenderer(string(l)) {
			t.Errorf("classic layout %s has no renderer", l)
		}
	}
	for _, l := range []designs.Layout{
		designs.LayoutLeftAlign, designs.LayoutCentered, designs.LayoutSplit, designs.LayoutModern,
		designs.LayoutLogoCentricFront, designs.LayoutInfoGridBack, designs.LayoutElegantCurve,
		designs.LayoutMinimalBorderLeft,
	} {
		if !HasRenderer(string(l)) {
			t.Errorf("design layout %s has no renderer", l)
		}
	}
}

func TestFaceView_UnknownLayoutFallsBack(t *testing.T) {
	html := render(t, Face{Layout: "hologram", BgColors: []string{"#000000"}}, sample)

	if !strings.Contains(html, `data-layout="`+fallbackLayout+`"`) {
		t.Errorf("expected fallback layout, got %s", html)
	}
	if !strings.Contains(html, "Ada Lovelace") {
		t.Error("fallback layout should still show the name")
	}
}

func TestFaceView_EscapesContact(t *testing.T) {
	c := sample
	c.Name = `<img src=x onerror="alert(1)">`
	html := render(t, Face{Layout: string(classic.LayoutBackInfoStandard)}, c)

	if strings.Contains(html, "<img src=x") {
		t.Error("contact text must be escaped")
	}
	if !strings.Contains(html, "&lt;img") {
		t.Error("expected escaped markup in output")
	}
}

func TestFaceView_Placeholders(t *testing.T) {
	html := render(t, Face{Layout: string(classic.LayoutFrontLogoCentric)}, Contact{})

	if !strings.Contains(html, "Company Name") {
		t.Error("expected company placeholder")
	}
	if !strings.Contains(html, ">LG<") {
		t.Error("expected initials fallback badge")
	}
}

func TestFaceView_LogoOnlyFromDataURL(t *testing.T) {
	c := sample
	c.Logo = "javascript:alert(1)"
	html := render(t, Face{Layout: string(classic.LayoutFrontLogoCentric)}, c)
	if strings.Contains(html, "javascript:") {
		t.Error("non-image logos must not be rendered")
	}

	c.Logo = "data:image/png;base64,AAAA"
	html = render(t, Face{Layout: string(classic.LayoutFrontLogoCentric)}, c)
	if !strings.Contains(html, `src="data:image/png;base64,AAAA"`) {
		t.Error("expected data URL logo")
	}
}

func TestFaceView_VerticalClass(t *testing.T) {
	html := render(t, Face{Layout: string(classic.LayoutFrontMinimalVertical), Orientation: "vertical"}, sample)
	if !strings.Contains(html, "card-face--vertical") {
		t.Error("expected vertical class")
	}
}

func TestFromSide_TextColor(t *testing.T) {
	side := classic.SideConfig{BgColors: []string{"#000000"}, TextColor: "#123456"}
	if got := FromSide(side).TextColor; got != "#123456" {
		t.Errorf("expected template text color, got %s", got)
	}

	side.TextColor = ""
	if got := FromSide(side).TextColor; got != cardstyle.White {
		t.Errorf("expected contrast color on black, got %s", got)
	}
}

func TestFromDesignSide_UsesContrast(t *testing.T) {
	f := FromDesignSide(designs.DesignSide{
		BgColors:    []string{"#ffffff"},
		TextColor:   "#ffffff",
		BorderStyle: designs.BorderDashed,
		AccentColor: "#aa0000",
	})
	if f.TextColor == "#ffffff" {
		t.Error("design text color must be resolved from the background")
	}
	if !strings.Contains(f.Style(), "border: 2px dashed #aa0000;") {
		t.Errorf("expected dashed border, got %s", f.Style())
	}
}

func TestStyle_DropsInvalidValues(t *testing.T) {
	f := Face{
		BgStyle:    "gradient",
		BgColors:   []string{"red;}</style>", "#112233"},
		FontFamily: `x"; background:url(evil)`,
		TextColor:  "javascript",
	}
	style := f.Style()

	if strings.Contains(style, "evil") || strings.Contains(style, "</style>") {
		t.Errorf("unsafe values reached the style: %s", style)
	}
	if !strings.Contains(style, "#112233") {
		t.Errorf("expected valid color to remain, got %s", style)
	}
}

func TestPairView_Selected(t *testing.T) {
	var buf bytes.Buffer
	front := Face{Layout: string(classic.LayoutFrontLogoLeft)}
	back := Face{Layout: string(classic.LayoutBackSidebarRight)}
	if err := PairView("Pair <1>", front, back, sample, true).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `class="card-pair selected"`) {
		t.Error("expected selected pair")
	}
	if strings.Count(html, `data-layout=`) != 2 {
		t.Error("expected two faces")
	}
	if !strings.Contains(html, "Pair &lt;1&gt;") {
		t.Error("expected escaped title")
	}
}

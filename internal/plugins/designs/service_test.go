package designs

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
)

func newTestService(seed uint64) DesignService {
	return NewDesignService(0, rand.NewPCG(seed, seed+1))
}

// --- Generate Tests ---

func TestGenerate_CountAndIDs(t *testing.T) {
	svc := newTestService(1)

	designs, err := svc.Generate(context.Background(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(designs) != 25 {
		t.Fatalf("expected 25 designs, got %d", len(designs))
	}
	if designs[0].ID != "ai-design-1" || designs[24].ID != "ai-design-25" {
		t.Errorf("unexpected IDs %s .. %s", designs[0].ID, designs[24].ID)
	}
}

func TestGenerate_SameSeedSameDesigns(t *testing.T) {
	a, _ := newTestService(42).Generate(context.Background(), 30)
	b, _ := newTestService(42).Generate(context.Background(), 30)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical designs for the same seed")
	}
}

func TestGenerate_FaceRules(t *testing.T) {
	designs, _ := newTestService(7).Generate(context.Background(), 300)

	themeNames := make(map[string]bool)
	for _, th := range Themes() {
		themeNames[th.Name] = true
	}

	for _, d := range designs {
		if !themeNames[d.Name] {
			t.Errorf("%s: unknown theme %q", d.ID, d.Name)
		}
		if d.Front.Layout == LayoutInfoGridBack {
			t.Errorf("%s: back-only layout on the front", d.ID)
		}
		if d.Back.Layout == LayoutLogoCentricFront {
			t.Errorf("%s: front-only layout on the back", d.ID)
		}
		if d.Back.Decoration == DecorationOverlayGlow {
			t.Errorf("%s: glow decoration on the back", d.ID)
		}
		if d.Back.BgStyle != cardstyle.BgSolid || d.Back.FontWeight != WeightNormal {
			t.Errorf("%s: unexpected back style %+v", d.ID, d.Back)
		}
		if d.Front.BorderStyle != BorderNone || d.Back.BorderStyle != BorderNone {
			t.Errorf("%s: expected no borders", d.ID)
		}
		for _, side := range []DesignSide{d.Front, d.Back} {
			if want := cardstyle.ContrastColor(side.BgColors[0]); side.TextColor != want {
				t.Errorf("%s: text color %s, want %s", d.ID, side.TextColor, want)
			}
		}
	}
}

func TestGenerate_DoesNotAliasThemes(t *testing.T) {
	svc := newTestService(3)
	designs, _ := svc.Generate(context.Background(), 10)
	for i := range designs {
		designs[i].Front.BgColors[0] = "#123456"
	}

	for _, th := range Themes() {
		if th.FrontBg[0] == "#123456" {
			t.Fatal("mutating a design changed the theme catalog")
		}
	}
}

func TestGenerate_HonorsContextDuringDelay(t *testing.T) {
	svc := NewDesignService(time.Hour, rand.NewPCG(1, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Generate(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Generate waited despite cancelled context")
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	designs, err := newTestService(1).Generate(context.Background(), -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(designs) != 0 {
		t.Errorf("expected no designs, got %d", len(designs))
	}
}

// --- Normalize Tests ---

func TestNormalizeSide_Defaults(t *testing.T) {
	side := NormalizeSide(map[string]any{}, "#123456")

	want := DesignSide{
		BgStyle:     "solid",
		BgColors:    []string{"#ffffff", "#f0f0f0"},
		TextColor:   "#000000",
		AccentColor: "#123456",
		Layout:      LayoutLogoCentricFront,
		Decoration:  DecorationNone,
		FontWeight:  WeightNormal,
		FontFamily:  "'Poppins', sans-serif",
		BorderStyle: BorderNone,
	}
	if !reflect.DeepEqual(side, want) {
		t.Errorf("got %+v\nwant %+v", side, want)
	}
}

func TestNormalizeSide_KeepsKnownValues(t *testing.T) {
	raw := map[string]any{
		"bgStyle":     "radial",
		"bgColors":    []any{"#0a192f", "#1a2f3e"},
		"accentColor": "#d4af37",
		"layout":      "left-align",
		"decoration":  "abstract-blobs",
		"fontWeight":  "bold",
		"fontFamily":  "'Merriweather', serif",
		"borderStyle": "dashed",
		"textColor":   "#0a192f",
	}

	side := NormalizeSide(raw, "#000000")
	if side.BgStyle != "radial" || side.Layout != LayoutLeftAlign || side.Decoration != DecorationAbstractBlobs {
		t.Errorf("enum values not kept: %+v", side)
	}
	if side.FontWeight != WeightBold || side.BorderStyle != BorderDashed || side.FontFamily != "'Merriweather', serif" {
		t.Errorf("style values not kept: %+v", side)
	}
	if side.AccentColor != "#d4af37" {
		t.Errorf("accent not kept: %s", side.AccentColor)
	}
	if side.TextColor != "#ffffff" {
		t.Errorf("text color should be recomputed for a dark background, got %s", side.TextColor)
	}
}

func TestNormalizeSide_RejectsUnknownAndMalformed(t *testing.T) {
	raw := map[string]any{
		"bgStyle":     "plaid",
		"bgColors":    []any{"red", 7, "#zzzzzz"},
		"accentColor": "url(javascript:alert(1))",
		"layout":      "diagonal",
		"decoration":  42,
		"fontWeight":  "900",
		"fontFamily":  "Inter; background: red",
		"borderStyle": "double",
	}

	side := NormalizeSide(raw, "#abcdef")
	want := NormalizeSide(map[string]any{}, "#abcdef")
	if !reflect.DeepEqual(side, want) {
		t.Errorf("expected defaults, got %+v", side)
	}
}

func TestNormalize_RecordDefaultsAndAccentBorrowing(t *testing.T) {
	svc := newTestService(9)

	got := svc.Normalize([]RawDesign{
		{
			"front": map[string]any{"accentColor": "#111111"},
			"back":  map[string]any{},
		},
		{
			"id":    "custom",
			"name":  "Mine",
			"front": "not an object",
		},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 designs, got %d", len(got))
	}
	if got[0].ID != "design-0" || got[0].Name != "Design 1" {
		t.Errorf("unexpected fallback identity %s / %s", got[0].ID, got[0].Name)
	}
	if got[0].Back.AccentColor != "#111111" {
		t.Errorf("back should borrow the front accent, got %s", got[0].Back.AccentColor)
	}
	if got[1].ID != "custom" || got[1].Name != "Mine" {
		t.Errorf("explicit identity not kept: %s / %s", got[1].ID, got[1].Name)
	}
	if !cardstyle.IsHexColor(got[1].Front.AccentColor) || got[1].Front.AccentColor != got[1].Back.AccentColor {
		t.Errorf("sides without accents should share one random color, got %s / %s", got[1].Front.AccentColor, got[1].Back.AccentColor)
	}
}

package cardstyle

import (
	"math"
	"sync"
	"testing"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"black background", "#000000", White},
		{"white background", "#ffffff", Black},
		{"upper case", "#FFFFFF", Black},
		{"no hash", "ffffff", Black},
		{"navy", "#0a192f", White},
		{"warm neutral", "#F3EFE0", Black},
		{"mid grey stays white", "#777777", White},
		{"gold", "#d4af37", White},
		{"pure green", "#00ff00", Black},
		{"pure red", "#ff0000", White},
		{"short form is invalid", "#fff", Black},
		{"garbage", "not-a-color", Black},
		{"empty", "", Black},
		{"too long", "#1234567", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastColor(tt.in); got != tt.want {
				t.Errorf("ContrastColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLuminance_Extremes(t *testing.T) {
	l, ok := Luminance("#000000")
	if !ok || l != 0 {
		t.Errorf("black: got %v, %v", l, ok)
	}
	l, ok = Luminance("#ffffff")
	if !ok || math.Abs(l-1) > 1e-9 {
		t.Errorf("white: got %v, %v", l, ok)
	}
	if _, ok := Luminance("#zzzzzz"); ok {
		t.Error("expected parse failure for non-hex digits")
	}
}

func TestLuminance_LinearSegment(t *testing.T) {
	// 0x0a/255 = 0.0392 is at or below the 0.03928 threshold, so the
	// linear branch applies to every channel.
	l, ok := Luminance("#0a0a0a")
	if !ok {
		t.Fatal("expected parse success")
	}
	want := (10.0 / 255) / 12.92
	if math.Abs(l-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, l)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := ParseHex("#1A2f3E")
	if !ok || r != 0x1a || g != 0x2f || b != 0x3e {
		t.Errorf("got %d %d %d %v", r, g, b, ok)
	}
}

func TestIsHexColor(t *testing.T) {
	if !IsHexColor("#a1B2c3") {
		t.Error("expected #a1B2c3 to be valid")
	}
	for _, bad := range []string{"a1b2c3", "#abc", "#a1b2c3 ", "red"} {
		if IsHexColor(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestContrastColor_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if ContrastColor("#000000") != White {
					t.Error("unexpected result under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

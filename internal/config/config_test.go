package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.Gallery.DefaultCount != 50 {
		t.Errorf("expected gallery count 50, got %d", cfg.Gallery.DefaultCount)
	}
	if cfg.ImageGen.Timeout != 60*time.Second {
		t.Errorf("expected 60s image timeout, got %s", cfg.ImageGen.Timeout)
	}
	if !strings.Contains(cfg.ImageGen.URL, "stable-diffusion-xl") {
		t.Errorf("unexpected default image URL %q", cfg.ImageGen.URL)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}
}

func TestLoad_ProductionRequiresAPIKey(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("HF_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when HF_API_KEY is missing in production")
	}

	t.Setenv("HF_API_KEY", "hf_test")
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error with key set: %v", err)
	}
}

func TestLoad_RejectsNegativeGalleryCount(t *testing.T) {
	t.Setenv("GALLERY_COUNT", "-3")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative GALLERY_COUNT")
	}
}

func TestLoad_FrontendOrigins(t *testing.T) {
	t.Setenv("BASE_URL", "https://cards.example.com")
	t.Setenv("FRONTEND_ORIGINS", "http://localhost:5173, ,https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cfg.AllowedOrigins()
	want := []string{"https://cards.example.com", "http://localhost:5173", "https://app.example.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDSN_AppendsDefaultPort(t *testing.T) {
	d := DatabaseConfig{Host: "mariadb", User: "u", Password: "p@ss", Name: "cards"}

	dsn := d.DSN()
	if !strings.Contains(dsn, "tcp(mariadb:3306)") {
		t.Errorf("expected default port in DSN, got %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("expected parseTime in DSN, got %s", dsn)
	}
}

func TestDSN_OverrideWins(t *testing.T) {
	d := DatabaseConfig{Host: "ignored", dsnOverride: "root:x@tcp(db:3307)/other"}

	if got := d.DSN(); got != "root:x@tcp(db:3307)/other" {
		t.Errorf("expected override DSN, got %s", got)
	}
}

func TestLoad_DesignsSeed(t *testing.T) {
	t.Setenv("DESIGNS_SEED", "42")
	t.Setenv("DESIGNS_DELAY", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Designs.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Designs.Seed)
	}
	if cfg.Designs.Delay != 0 {
		t.Errorf("expected no delay, got %s", cfg.Designs.Delay)
	}
}

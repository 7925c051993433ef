package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/keyxmakerx/cardstudio/internal/config"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) config.ImageGenConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return config.ImageGenConfig{
		URL:               srv.URL,
		APIKey:            "hf_test",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
	}
}

func TestHTTPClient_PostsPromptWithBearerToken(t *testing.T) {
	var gotAuth, gotInputs, gotMethod string
	cfg := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		var body inferenceRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotInputs = body.Inputs

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG"))
	})

	res, err := NewHTTPClient(cfg).Generate(context.Background(), "a red card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotAuth != "Bearer hf_test" || gotInputs != "a red card" {
		t.Errorf("unexpected upstream request: %s %q %q", gotMethod, gotAuth, gotInputs)
	}
	if !res.OK() || res.ContentType != "image/png" || string(res.Body) != "\x89PNG" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestHTTPClient_NonOKIsNotAnError(t *testing.T) {
	cfg := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	})

	res, err := NewHTTPClient(cfg).Generate(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 result, got %+v", res)
	}
}

func TestHTTPClient_CancelledContext(t *testing.T) {
	cfg := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPClient(cfg).Generate(ctx, "x"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestHTTPClient_UnreachableUpstream(t *testing.T) {
	cfg := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	cfg.URL = "http://127.0.0.1:1"

	if _, err := NewHTTPClient(cfg).Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected transport error")
	}
}

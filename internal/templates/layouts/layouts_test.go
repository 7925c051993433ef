package layouts

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestBase_RendersShellAndContent(t *testing.T) {
	ctx := SetActivePath(context.Background(), "/designs")
	ctx = SetCSRFToken(ctx, "tok123")

	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>inner</p>")
		return err
	})

	var buf bytes.Buffer
	if err := Base(`Designs <script>`, content).Render(ctx, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "<p>inner</p>") {
		t.Error("expected content to be rendered")
	}
	if !strings.Contains(html, `content="tok123"`) {
		t.Error("expected CSRF meta tag")
	}
	if !strings.Contains(html, `<a href="/designs" class="active">`) {
		t.Error("expected active nav link")
	}
	if strings.Contains(html, "<script>") {
		t.Error("title must be escaped")
	}
}

func TestContextHelpers_Defaults(t *testing.T) {
	ctx := context.Background()
	if GetCSRFToken(ctx) != "" || GetActivePath(ctx) != "" || GetBaseURL(ctx) != "" {
		t.Error("expected empty defaults")
	}
	if IsActive(ctx, "/") {
		t.Error("no path should be active without a stored path")
	}
	if GetBaseURL(SetBaseURL(ctx, "https://x.example")) != "https://x.example" {
		t.Error("expected stored base URL")
	}
}

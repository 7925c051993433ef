package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// --- Rate Limit Tests ---

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(2, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d: expected allowed", i+1)
		}
	}

	ok, retry := l.Allow("1.2.3.4")
	if ok {
		t.Fatal("expected third request to be limited")
	}
	if retry != time.Minute {
		t.Errorf("expected retry of one minute, got %s", retry)
	}

	// Other IPs have their own window.
	if ok, _ := l.Allow("5.6.7.8"); !ok {
		t.Error("expected a different IP to be allowed")
	}

	// A new window resets the count.
	now = now.Add(61 * time.Second)
	if ok, _ := l.Allow("1.2.3.4"); !ok {
		t.Error("expected request in new window to be allowed")
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("1.2.3.4")
	now = now.Add(3 * time.Minute)
	l.Sweep()

	if len(l.entries) != 0 {
		t.Errorf("expected expired entries to be swept, got %d", len(l.entries))
	}
}

func TestRateLimiter_MiddlewareReturns429(t *testing.T) {
	e := echo.New()
	l := NewRateLimiter(1, time.Minute)
	h := l.Middleware()(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-design", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	if err := h(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatalf("first request: unexpected error %v", err)
	}

	rec := httptest.NewRecorder()
	err := h(e.NewContext(req, rec))
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 AppError, got %v", err)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

// --- CORS Tests ---

func TestCORS_Preflight(t *testing.T) {
	e := echo.New()
	h := CORS(CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/cards", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), EditKeyHeader) {
		t.Error("expected edit key header to be allowed")
	}
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	e := echo.New()
	h := CORS(CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS headers for unknown origin")
	}
}

// --- CSRF Tests ---

func TestCSRF_SkipsAPI(t *testing.T) {
	e := echo.New()
	h := CSRF()(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/cards", nil)
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("expected API POST to bypass CSRF, got %v", err)
	}
}

func TestCSRF_RejectsMissingToken(t *testing.T) {
	e := echo.New()
	h := CSRF()(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "abc"})
	rec := httptest.NewRecorder()

	err := h(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestCSRF_AcceptsMatchingHeader(t *testing.T) {
	e := echo.New()
	h := CSRF()(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "abc"})
	req.Header.Set(csrfHeaderName, "abc")
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// --- Recovery Tests ---

func TestRecovery_ConvertsPanicToInternalError(t *testing.T) {
	e := echo.New()
	h := Recovery()(func(c echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	err := h(e.NewContext(req, httptest.NewRecorder()))
	if apperror.SafeCode(err) != http.StatusInternalServerError {
		t.Fatalf("expected 500 AppError, got %v", err)
	}
}

// --- Body Limit Tests ---

func TestBodyLimit_RejectsLargeContentLength(t *testing.T) {
	e := echo.New()
	h := BodyLimit(10)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/cards", strings.NewReader(strings.Repeat("x", 20)))
	err := h(e.NewContext(req, httptest.NewRecorder()))
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

// --- Operator Token Tests ---

func TestRequireOperatorToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"not bearer", "s3cret", "Basic s3cret", http.StatusUnauthorized},
		{"wrong token", "s3cret", "Bearer nope", http.StatusForbidden},
		{"unconfigured", "", "Bearer ", http.StatusForbidden},
		{"valid", "s3cret", "Bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/generate-design/history", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := RequireOperatorToken(tt.token)(okHandler)(c)
			if tt.want == http.StatusOK {
				if err != nil || rec.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
				}
				return
			}
			if got := apperror.SafeCode(err); got != tt.want {
				t.Errorf("expected %d, got %d (%v)", tt.want, got, err)
			}
		})
	}
}

// data.go provides typed context helpers for passing layout data from
// handlers/middleware to Templ templates. Only simple types are stored so
// the layouts package never imports plugin types.
//
// Data flow: Handler/Middleware → Echo Context → LayoutInjector → Go Context → Templ
package layouts

import "context"

// ctxKey is a private type for context keys to prevent collisions.
type ctxKey string

const (
	keyCSRFToken  ctxKey = "layout_csrf_token"
	keyActivePath ctxKey = "layout_active_path"
	keyBaseURL    ctxKey = "layout_base_url"
)

// --- Setters (called by the layout injector in app/routes.go) ---

// SetCSRFToken stores the CSRF token for forms.
func SetCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, keyCSRFToken, token)
}

// SetActivePath stores the current request path for nav highlighting.
func SetActivePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, keyActivePath, path)
}

// SetBaseURL stores the public base URL used for absolute links.
func SetBaseURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, keyBaseURL, url)
}

// --- Getters (called by Templ templates) ---

// GetCSRFToken returns the CSRF token, or "".
func GetCSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(keyCSRFToken).(string)
	return token
}

// GetActivePath returns the current request path for nav highlighting.
func GetActivePath(ctx context.Context) string {
	path, _ := ctx.Value(keyActivePath).(string)
	return path
}

// GetBaseURL returns the public base URL, or "".
func GetBaseURL(ctx context.Context) string {
	url, _ := ctx.Value(keyBaseURL).(string)
	return url
}

// IsActive reports whether href is the current page.
func IsActive(ctx context.Context, href string) bool {
	return GetActivePath(ctx) == href
}

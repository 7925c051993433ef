// Package pages holds full-page components that are not owned by a plugin.
package pages

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/cardstudio/internal/templates/layouts"
)

// ErrorPage renders a friendly error page for browser requests.
func ErrorPage(code int, message string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="error"><h1>%d</h1><p>%s</p><p><a href="/">Back to the gallery</a></p></div>`,
			code, templ.EscapeString(message))
		return err
	})
	return layouts.Base(http.StatusText(code), body)
}

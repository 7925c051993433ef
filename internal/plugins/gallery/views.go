package gallery

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
	"github.com/keyxmakerx/cardstudio/internal/templates/cardview"
	"github.com/keyxmakerx/cardstudio/internal/templates/layouts"
)

// GalleryView is the data behind the classic gallery page.
type GalleryView struct {
	Count     int
	Templates []classic.Template
	Contact   cardview.Contact

	// Selected is the template ID of the loaded card, if any.
	Selected string
	CardID   string
}

// GalleryPage renders the classic template gallery.
func GalleryPage(v GalleryView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		intro := fmt.Sprintf("%d classic templates", len(v.Templates))
		if v.CardID != "" {
			intro += " for your saved card"
		}
		if _, err := fmt.Fprintf(w, `<p>%s</p><div class="gallery">`, templ.EscapeString(intro)); err != nil {
			return err
		}
		for _, t := range v.Templates {
			pair := cardview.PairView(t.Name,
				cardview.FromSide(t.Front), cardview.FromSide(t.Back),
				v.Contact, t.ID == v.Selected)
			if err := pair.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return layouts.Base("Classic Templates", body)
}

// DesignsPage renders suggested designs.
func DesignsPage(list []designs.Design, contact cardview.Contact) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<p>%d suggested designs</p><div class="gallery">`, len(list)); err != nil {
			return err
		}
		for _, d := range list {
			pair := cardview.PairView(d.Name,
				cardview.FromDesignSide(d.Front), cardview.FromDesignSide(d.Back),
				contact, false)
			if err := pair.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return layouts.Base("AI Designs", body)
}

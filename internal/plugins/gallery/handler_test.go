package gallery

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/plugins/audit"
	"github.com/keyxmakerx/cardstudio/internal/plugins/cards"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
)

// --- Mock Card Service ---

type mockCardService struct {
	getFn func(ctx context.Context, id string) (*cards.Card, error)
}

func (m *mockCardService) Create(context.Context, cards.CardInput) (*cards.CreateResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCardService) Get(ctx context.Context, id string) (*cards.Card, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, apperror.NewNotFound("card not found")
}

func (m *mockCardService) Update(context.Context, string, string, cards.CardInput) (*cards.Card, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCardService) Delete(context.Context, string, string) error {
	return errors.New("not implemented")
}

func (m *mockCardService) History(context.Context, string, string) ([]audit.AuditEntry, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCardService) Template(*cards.Card) (*classic.Template, error) {
	return nil, errors.New("not implemented")
}

func newTestHandler(cardSvc cards.CardService) *Handler {
	return NewHandler(classic.NewTemplateService(6), cardSvc, designs.NewDesignService(0, rand.NewPCG(7, 7)))
}

func get(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// --- Index Tests ---

func TestIndex_DefaultGallery(t *testing.T) {
	h := newTestHandler(&mockCardService{})
	c, rec := get("/")

	if err := h.Index(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()

	if got := strings.Count(body, `class="card-pair`); got != 6 {
		t.Errorf("expected 6 template pairs, got %d", got)
	}
	if !strings.Contains(body, cards.SampleData.Name) {
		t.Error("expected sample data on the cards")
	}
	if !strings.Contains(body, "Dark Teal &amp; Gold Minimalist Vertical") {
		t.Error("expected first template name")
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestIndex_Count(t *testing.T) {
	h := newTestHandler(&mockCardService{})

	c, rec := get("/?count=2")
	if err := h.Index(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(rec.Body.String(), `class="card-pair`); got != 2 {
		t.Errorf("expected 2 pairs, got %d", got)
	}

	c, _ = get("/?count=-1")
	assertAppError(t, h.Index(c), http.StatusBadRequest)
}

func TestIndex_SavedCard(t *testing.T) {
	saved := &cards.Card{
		ID:         "6b1f8f5e-3d4c-4a55-9a0e-1b2c3d4e5f60",
		CardData:   cards.CardData{Name: "Grace Hopper", Company: "Navy"},
		TemplateID: "classic-001",
		Overrides:  classic.Overrides{AccentColor: "#abcdef"},
	}
	h := newTestHandler(&mockCardService{getFn: func(_ context.Context, id string) (*cards.Card, error) {
		if id != saved.ID {
			return nil, apperror.NewNotFound("card not found")
		}
		return saved, nil
	}})

	c, rec := get("/?card=" + saved.ID)
	if err := h.Index(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()

	if !strings.Contains(body, "Grace Hopper") {
		t.Error("expected saved card data")
	}
	if strings.Count(body, `class="card-pair selected"`) != 1 {
		t.Error("expected the saved template to be highlighted")
	}
	if !strings.Contains(body, "#abcdef") {
		t.Error("expected saved overrides to be applied")
	}

	c, _ = get("/?card=missing")
	assertAppError(t, h.Index(c), http.StatusNotFound)
}

func TestIndex_QueryOverrides(t *testing.T) {
	h := newTestHandler(&mockCardService{})

	c, rec := get("/?count=1&accent=%23123abc")
	if err := h.Index(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "#123abc") {
		t.Error("expected accent override in output")
	}

	c, _ = get("/?accent=blue")
	assertAppError(t, h.Index(c), http.StatusUnprocessableEntity)
}

// --- Designs Tests ---

func TestDesigns(t *testing.T) {
	h := newTestHandler(&mockCardService{})

	c, rec := get("/designs")
	if err := h.Designs(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(rec.Body.String(), `class="card-pair`); got != DefaultDesignCount {
		t.Errorf("expected %d designs, got %d", DefaultDesignCount, got)
	}

	c, _ = get("/designs?count=101")
	assertAppError(t, h.Designs(c), http.StatusBadRequest)
}

func TestMerge(t *testing.T) {
	base := classic.Overrides{FontFamily: "'Inter', sans-serif", TextColor: "#000000"}
	got := merge(base, classic.Overrides{TextColor: "#ffffff", FontSize: 12})

	want := classic.Overrides{FontFamily: "'Inter', sans-serif", TextColor: "#ffffff", FontSize: 12}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

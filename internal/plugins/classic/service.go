package classic

import (
	"fmt"
	"sync"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

// MaxTemplateCount caps how many templates one request may generate.
const MaxTemplateCount = 500

// TemplateService defines the business logic contract for the classic
// template gallery. Handlers call these methods; they never call Generate
// directly so count validation lives in one place.
type TemplateService interface {
	// List returns count templates. Count must be in [0, MaxTemplateCount].
	List(count int) ([]Template, error)

	// Get returns one template with overrides applied to both faces.
	// The ID must fall inside the configured gallery size.
	Get(id string, o Overrides) (*Template, error)

	// GallerySize is the default number of templates in the gallery.
	GallerySize() int
}

// templateService implements TemplateService. Generated galleries are
// memoized per count since Generate is a pure function of count.
type templateService struct {
	gallerySize int

	mu    sync.RWMutex
	cache map[int][]Template
}

// NewTemplateService creates a template service whose gallery holds
// gallerySize templates by default.
func NewTemplateService(gallerySize int) TemplateService {
	if gallerySize < 0 {
		gallerySize = 0
	}
	if gallerySize > MaxTemplateCount {
		gallerySize = MaxTemplateCount
	}
	return &templateService{
		gallerySize: gallerySize,
		cache:       make(map[int][]Template),
	}
}

// List validates count and returns the generated templates. Callers get
// their own slice; the memoized one is never handed out.
func (s *templateService) List(count int) ([]Template, error) {
	if count < 0 {
		return nil, apperror.NewBadRequest("count must not be negative")
	}
	if count > MaxTemplateCount {
		return nil, apperror.NewBadRequest(fmt.Sprintf("count must be at most %d", MaxTemplateCount))
	}

	s.mu.RLock()
	cached, ok := s.cache[count]
	s.mu.RUnlock()

	if !ok {
		cached = Generate(count)
		s.mu.Lock()
		s.cache[count] = cached
		s.mu.Unlock()
	}

	return cloneTemplates(cached), nil
}

// Get looks up a template by ID and applies the overrides.
func (s *templateService) Get(id string, o Overrides) (*Template, error) {
	i, ok := ParseTemplateID(id)
	if !ok || i >= s.gallerySize {
		return nil, apperror.NewNotFound("template not found")
	}
	if err := o.Validate(); err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	t := Customize(templateAt(i), o)
	return &t, nil
}

// GallerySize returns the configured default gallery size.
func (s *templateService) GallerySize() int {
	return s.gallerySize
}

// cloneTemplates deep-copies the color slices so callers cannot mutate the
// memoized gallery.
func cloneTemplates(in []Template) []Template {
	out := make([]Template, len(in))
	for i, t := range in {
		t.Front.BgColors = cloneColors(t.Front.BgColors)
		t.Back.BgColors = cloneColors(t.Back.BgColors)
		out[i] = t
	}
	return out
}

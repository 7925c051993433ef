package designs

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
)

// DefaultCount is how many designs one request suggests when no count is given.
const DefaultCount = 100

// MaxCount is the most designs one request may ask for.
const MaxCount = 100

// DesignService defines the contract for design suggestions.
type DesignService interface {
	// Generate returns count designs after the simulated model latency.
	// It returns ctx.Err() if the context ends first.
	Generate(ctx context.Context, count int) ([]Design, error)

	// Normalize turns untyped design records into fully populated designs.
	Normalize(raw []RawDesign) []Design
}

// designService implements DesignService. math/rand/v2 generators are not
// safe for concurrent use, so every draw happens under mu.
type designService struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDesignService creates a design service that waits delay before
// answering and draws from src.
func NewDesignService(delay time.Duration, src rand.Source) DesignService {
	return &designService{
		delay: delay,
		rng:   rand.New(src),
	}
}

// Generate simulates a model call and returns count random designs.
func (s *designService) Generate(ctx context.Context, count int) ([]Design, error) {
	if count < 0 {
		count = 0
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	designs := make([]Design, 0, count)
	for i := 0; i < count; i++ {
		designs = append(designs, s.designAt(i))
	}

	slog.Debug("generated designs", slog.Int("count", count))
	return designs, nil
}

// designAt draws design i. Caller holds mu.
func (s *designService) designAt(i int) Design {
	theme := pick(s.rng, themes[:])

	front := DesignSide{
		BgStyle:     pick(s.rng, frontBgStyles),
		BgColors:    cloneColors(theme.FrontBg),
		AccentColor: theme.FrontAccent,
		Layout:      pick(s.rng, frontLayouts),
		Decoration:  pick(s.rng, generatedDecorations),
		FontWeight:  pick(s.rng, fontWeights),
		FontFamily:  pick(s.rng, fontFamilies),
		BorderStyle: BorderNone,
	}
	back := DesignSide{
		BgStyle:     cardstyle.BgSolid,
		BgColors:    cloneColors(theme.BackBg),
		AccentColor: theme.BackAccent,
		Layout:      pick(s.rng, backLayouts),
		Decoration:  pick(s.rng, backDecorations),
		FontWeight:  WeightNormal,
		FontFamily:  pick(s.rng, fontFamilies),
		BorderStyle: BorderNone,
	}
	front.TextColor = cardstyle.ContrastColor(cardstyle.PrimaryBackground(front.BgColors))
	back.TextColor = cardstyle.ContrastColor(cardstyle.PrimaryBackground(back.BgColors))

	return Design{
		ID:    fmt.Sprintf("ai-design-%d", i+1),
		Name:  theme.Name,
		Front: front,
		Back:  back,
	}
}

// Normalize applies the defaulting rules to each record. A side's missing
// accent borrows the other side's accent, or a random color when neither
// has one.
func (s *designService) Normalize(raw []RawDesign) []Design {
	out := make([]Design, 0, len(raw))
	for i, rec := range raw {
		front := objectField(rec, "front")
		back := objectField(rec, "back")

		fallback := s.randomColor()
		frontDefault := firstColor(stringField(back, "accentColor"), fallback)
		backDefault := firstColor(stringField(front, "accentColor"), fallback)

		id := stringField(rec, "id")
		if id == "" {
			id = fmt.Sprintf("design-%d", i)
		}
		name := stringField(rec, "name")
		if name == "" {
			name = fmt.Sprintf("Design %d", i+1)
		}

		out = append(out, Design{
			ID:    id,
			Name:  name,
			Front: NormalizeSide(front, frontDefault),
			Back:  NormalizeSide(back, backDefault),
		})
	}
	return out
}

// randomColor returns a random #RRGGBB color.
func (s *designService) randomColor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("#%06x", s.rng.IntN(1<<24))
}

// firstColor returns the first valid #RRGGBB color among candidates.
func firstColor(candidates ...string) string {
	for _, c := range candidates {
		if cardstyle.IsHexColor(c) {
			return c
		}
	}
	return cardstyle.Black
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

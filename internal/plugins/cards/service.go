package cards

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/plugins/audit"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/sanitize"
	"github.com/keyxmakerx/cardstudio/internal/validate"
)

// editKeyBytes is the entropy of an edit key before hex encoding.
const editKeyBytes = 24

// editKeyPrefix marks edit keys so they are recognizable in support requests.
const editKeyPrefix = "ek_"

// TemplateResolver looks up a gallery template. classic.TemplateService
// satisfies it.
type TemplateResolver interface {
	Get(id string, o classic.Overrides) (*classic.Template, error)
}

// CardService defines the business logic contract for saved cards.
type CardService interface {
	Create(ctx context.Context, input CardInput) (*CreateResult, error)
	Get(ctx context.Context, id string) (*Card, error)

	// Update and Delete require the edit key issued by Create.
	Update(ctx context.Context, id, editKey string, input CardInput) (*Card, error)
	Delete(ctx context.Context, id, editKey string) error

	// History returns the card's activity log. It requires the edit key.
	History(ctx context.Context, id, editKey string) ([]audit.AuditEntry, error)

	// Template returns the card's template with its overrides applied.
	Template(card *Card) (*classic.Template, error)
}

// cardService implements CardService.
type cardService struct {
	repo      CardRepository
	templates TemplateResolver
	activity  audit.AuditService
	now       func() time.Time
}

// NewCardService creates a new card service. activity may be nil, which
// disables the activity log.
func NewCardService(repo CardRepository, templates TemplateResolver, activity audit.AuditService) CardService {
	return &cardService{
		repo:      repo,
		templates: templates,
		activity:  activity,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and stores a new card and issues its edit key.
func (s *cardService) Create(ctx context.Context, input CardInput) (*CreateResult, error) {
	input, err := s.prepare(input)
	if err != nil {
		return nil, err
	}

	editKey, hash, err := newEditKey()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	now := s.now()
	card := &Card{
		ID:          uuid.NewString(),
		CardData:    input.CardData,
		TemplateID:  input.TemplateID,
		Overrides:   input.Overrides,
		EditKeyHash: hash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving card: %w", err))
	}

	slog.Info("card created",
		slog.String("id", card.ID),
		slog.String("template_id", card.TemplateID),
	)
	s.record(ctx, card.ID, audit.ActionCardCreated, map[string]any{"template_id": card.TemplateID})
	return &CreateResult{Card: card, EditKey: editKey}, nil
}

// Get returns a saved card.
func (s *cardService) Get(ctx context.Context, id string) (*Card, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperror.NewNotFound("card not found")
	}
	return s.repo.FindByID(ctx, id)
}

// Update replaces a card's contents after checking the edit key.
func (s *cardService) Update(ctx context.Context, id, editKey string, input CardInput) (*Card, error) {
	card, err := s.authorize(ctx, id, editKey)
	if err != nil {
		return nil, err
	}

	input, err = s.prepare(input)
	if err != nil {
		return nil, err
	}

	card.CardData = input.CardData
	card.TemplateID = input.TemplateID
	card.Overrides = input.Overrides
	card.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, card); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("updating card: %w", err))
	}

	slog.Info("card updated", slog.String("id", card.ID))
	s.record(ctx, card.ID, audit.ActionCardUpdated, map[string]any{"template_id": card.TemplateID})
	return card, nil
}

// Delete removes a card after checking the edit key.
func (s *cardService) Delete(ctx context.Context, id, editKey string) error {
	if _, err := s.authorize(ctx, id, editKey); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("card deleted", slog.String("id", id))
	s.record(ctx, id, audit.ActionCardDeleted, nil)
	return nil
}

// History returns the activity log of a card the caller can edit.
func (s *cardService) History(ctx context.Context, id, editKey string) ([]audit.AuditEntry, error) {
	if _, err := s.authorize(ctx, id, editKey); err != nil {
		return nil, err
	}
	if s.activity == nil {
		return []audit.AuditEntry{}, nil
	}
	return s.activity.CardHistory(ctx, id)
}

// record appends to the activity log. Errors are already logged by the
// audit service and must not fail the card operation.
func (s *cardService) record(ctx context.Context, cardID, action string, details map[string]any) {
	if s.activity == nil {
		return
	}
	_ = s.activity.Log(ctx, &audit.AuditEntry{
		CardID:    cardID,
		Action:    action,
		Details:   details,
		CreatedAt: s.now(),
	})
}

// Template resolves the saved template choice. Saved cards may point past a
// gallery that has since shrunk, so the lookup is not limited to it.
func (s *cardService) Template(card *Card) (*classic.Template, error) {
	t, ok := classic.Lookup(card.TemplateID)
	if !ok {
		return nil, apperror.NewNotFound("template not found")
	}
	if err := card.Overrides.Validate(); err != nil {
		return nil, apperror.NewValidation(err.Error())
	}
	t = classic.Customize(t, card.Overrides)
	return &t, nil
}

// authorize loads a card and verifies the edit key against its hash.
func (s *cardService) authorize(ctx context.Context, id, editKey string) (*Card, error) {
	if editKey == "" {
		return nil, apperror.NewUnauthorized("edit key is required")
	}
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !checkEditKey(card.EditKeyHash, editKey) {
		return nil, apperror.NewForbidden("invalid edit key")
	}
	return card, nil
}

// prepare sanitizes, validates and resolves an input. Sanitizing runs first
// so markup-only values fail the required checks.
func (s *cardService) prepare(input CardInput) (CardInput, error) {
	d := &input.CardData
	d.Name = sanitize.Text(d.Name)
	d.Title = sanitize.Text(d.Title)
	d.Company = sanitize.Text(d.Company)
	d.Email = strings.ToLower(sanitize.Text(d.Email))
	d.Phone = sanitize.Text(d.Phone)
	d.Website = sanitize.Text(d.Website)
	d.Address = sanitize.Text(d.Address)
	d.Logo = strings.TrimSpace(d.Logo)
	input.TemplateID = strings.TrimSpace(input.TemplateID)
	input.Overrides.FontFamily = strings.TrimSpace(input.Overrides.FontFamily)

	if err := validate.Struct(input); err != nil {
		return input, err
	}

	if _, err := s.templates.Get(input.TemplateID, input.Overrides); err != nil {
		if apperror.SafeCode(err) == http.StatusNotFound {
			return input, apperror.NewValidation("template_id does not name a gallery template")
		}
		return input, err
	}

	logo, err := NormalizeLogo(d.Logo)
	if err != nil {
		return input, apperror.NewValidation("logo could not be read as an image")
	}
	d.Logo = logo

	return input, nil
}

// newEditKey returns a random edit key and its bcrypt hash.
func newEditKey() (string, string, error) {
	raw := make([]byte, editKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generating edit key: %w", err)
	}
	key := editKeyPrefix + hex.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing edit key: %w", err)
	}
	return key, string(hash), nil
}

// checkEditKey compares a presented key with the stored hash. Keys of the
// wrong shape are rejected before bcrypt runs.
func checkEditKey(hash, key string) bool {
	if len(key) != len(editKeyPrefix)+2*editKeyBytes || !strings.HasPrefix(key, editKeyPrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

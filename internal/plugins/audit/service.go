package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

// maxCardHistoryEntries caps the history returned for a single card.
const maxCardHistoryEntries = 100

// AuditService handles business logic for the activity log.
type AuditService interface {
	// Log records an entry. Failures are logged here, so callers may
	// ignore the returned error.
	Log(ctx context.Context, entry *AuditEntry) error

	// CardHistory returns the recent history of one card.
	CardHistory(ctx context.Context, cardID string) ([]AuditEntry, error)
}

// auditService implements AuditService.
type auditService struct {
	repo AuditRepository
}

// NewAuditService creates a new audit service with the given repository.
func NewAuditService(repo AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Log validates and persists an entry.
func (s *auditService) Log(ctx context.Context, entry *AuditEntry) error {
	if entry.CardID == "" {
		return apperror.NewBadRequest("card ID is required for activity entry")
	}
	if entry.Action == "" {
		return apperror.NewBadRequest("action is required for activity entry")
	}

	if err := s.repo.Log(ctx, entry); err != nil {
		slog.Error("failed to write card activity",
			slog.String("card_id", entry.CardID),
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)
		return apperror.NewInternal(fmt.Errorf("writing activity entry: %w", err))
	}
	return nil
}

// CardHistory returns at most maxCardHistoryEntries entries.
func (s *auditService) CardHistory(ctx context.Context, cardID string) ([]AuditEntry, error) {
	if cardID == "" {
		return nil, apperror.NewBadRequest("card ID is required")
	}

	entries, err := s.repo.ListByCard(ctx, cardID, maxCardHistoryEntries)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing card history: %w", err))
	}
	return entries, nil
}

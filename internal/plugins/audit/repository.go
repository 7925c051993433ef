package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// AuditRepository defines the data access contract for the activity log.
type AuditRepository interface {
	// Log inserts a new entry and sets its ID.
	Log(ctx context.Context, entry *AuditEntry) error

	// ListByCard returns a card's most recent entries, newest first.
	ListByCard(ctx context.Context, cardID string, limit int) ([]AuditEntry, error)
}

// auditRepository implements AuditRepository with MariaDB queries.
type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new repository backed by the given DB pool.
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Log inserts an entry. Details are stored as JSON, or NULL when absent.
func (r *auditRepository) Log(ctx context.Context, entry *AuditEntry) error {
	var detailsJSON []byte
	if entry.Details != nil {
		var err error
		detailsJSON, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("marshaling activity details: %w", err)
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO card_activity (card_id, action, details, created_at) VALUES (?, ?, ?, ?)`,
		entry.CardID, entry.Action, detailsJSON, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting activity entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting activity entry id: %w", err)
	}
	entry.ID = id
	return nil
}

// ListByCard returns the most recent entries for one card.
func (r *auditRepository) ListByCard(ctx context.Context, cardID string, limit int) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, card_id, action, details, created_at
		 FROM card_activity
		 WHERE card_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		cardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing card activity: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// scanEntries reads id, card_id, action, details, created_at rows.
func scanEntries(rows *sql.Rows) ([]AuditEntry, error) {
	entries := []AuditEntry{}
	for rows.Next() {
		var e AuditEntry
		var detailsJSON sql.NullString
		if err := rows.Scan(&e.ID, &e.CardID, &e.Action, &detailsJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		if detailsJSON.Valid && detailsJSON.String != "" {
			if err := json.Unmarshal([]byte(detailsJSON.String), &e.Details); err != nil {
				// Keep the entry visible even if its details are unreadable.
				e.Details = map[string]any{"_parse_error": "invalid JSON"}
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}
	return entries, nil
}

// Package audit records what happened to saved cards. Every create, update
// and delete is captured as an AuditEntry in the card_activity table so a
// card's owner can see its change history.
//
// The log only observes changes made by the cards plugin. A failed write is
// reported but never blocks the card operation itself.
package audit

import "time"

// Action strings follow the pattern "resource.verb".
const (
	ActionCardCreated = "card.created"
	ActionCardUpdated = "card.updated"
	ActionCardDeleted = "card.deleted"
)

// AuditEntry is a single recorded action on a card. Details holds
// action-specific metadata, such as the template a card moved to.
type AuditEntry struct {
	ID        int64          `json:"id"`
	CardID    string         `json:"card_id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

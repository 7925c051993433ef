package imagegen

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LogRepository defines the data access contract for the generation log.
type LogRepository interface {
	// Log inserts a new entry and sets its ID.
	Log(ctx context.Context, entry *LogEntry) error

	// Recent returns the newest entries, most recent first.
	Recent(ctx context.Context, limit int) ([]LogEntry, error)
}

// logRepository implements LogRepository with MariaDB queries.
type logRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new repository backed by the given DB pool.
func NewLogRepository(db *sql.DB) LogRepository {
	return &logRepository{db: db}
}

// Log inserts a generation log entry.
func (r *logRepository) Log(ctx context.Context, entry *LogEntry) error {
	query := `INSERT INTO generation_log (prompt_hash, prompt_preview, outcome, status_code, content_type, latency_ms, remote_ip, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.PromptHash, entry.PromptPreview, string(entry.Outcome),
		entry.StatusCode, entry.ContentType, entry.LatencyMS,
		entry.RemoteIP, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting generation log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting generation log id: %w", err)
	}
	entry.ID = id

	return nil
}

// Recent returns the newest log entries.
func (r *logRepository) Recent(ctx context.Context, limit int) ([]LogEntry, error) {
	query := `SELECT id, prompt_hash, prompt_preview, outcome, status_code,
	                 content_type, latency_ms, remote_ip, created_at
	          FROM generation_log
	          ORDER BY created_at DESC, id DESC
	          LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing generation log: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var outcome string
		if err := rows.Scan(
			&e.ID, &e.PromptHash, &e.PromptPreview, &outcome, &e.StatusCode,
			&e.ContentType, &e.LatencyMS, &e.RemoteIP, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning generation log row: %w", err)
		}
		e.Outcome = Outcome(outcome)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generation log rows: %w", err)
	}

	return entries, nil
}

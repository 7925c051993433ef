package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

// CardRepository defines the data access contract for saved cards.
type CardRepository interface {
	Create(ctx context.Context, card *Card) error

	// FindByID returns apperror.NotFound when no card has the ID.
	FindByID(ctx context.Context, id string) (*Card, error)

	// Update overwrites the card's data, template and overrides.
	Update(ctx context.Context, card *Card) error

	Delete(ctx context.Context, id string) error
}

// cardRepository implements CardRepository with MariaDB queries.
type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository backed by the given DB pool.
func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepository{db: db}
}

// Create inserts a new card row.
func (r *cardRepository) Create(ctx context.Context, card *Card) error {
	query := `INSERT INTO cards (id, name, title, company, email, phone, website, address, logo,
	                             template_id, font_family, font_size, text_color, accent_color,
	                             edit_key_hash, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Title, card.Company, card.Email,
		card.Phone, card.Website, card.Address, nullString(card.Logo),
		card.TemplateID, card.Overrides.FontFamily, nullInt(card.Overrides.FontSize),
		card.Overrides.TextColor, card.Overrides.AccentColor,
		card.EditKeyHash, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting card: %w", err)
	}
	return nil
}

// FindByID retrieves a card by its UUID.
func (r *cardRepository) FindByID(ctx context.Context, id string) (*Card, error) {
	query := `SELECT id, name, title, company, email, phone, website, address, logo,
	                 template_id, font_family, font_size, text_color, accent_color,
	                 edit_key_hash, created_at, updated_at
	          FROM cards WHERE id = ?`

	card := &Card{}
	var logo sql.NullString
	var fontSize sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Title, &card.Company, &card.Email,
		&card.Phone, &card.Website, &card.Address, &logo,
		&card.TemplateID, &card.Overrides.FontFamily, &fontSize,
		&card.Overrides.TextColor, &card.Overrides.AccentColor,
		&card.EditKeyHash, &card.CreatedAt, &card.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("card not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying card by id: %w", err)
	}

	card.Logo = logo.String
	card.Overrides.FontSize = int(fontSize.Int64)
	return card, nil
}

// Update overwrites a card's editable columns. MariaDB reports zero
// affected rows when nothing changed, so existence is the caller's check.
func (r *cardRepository) Update(ctx context.Context, card *Card) error {
	query := `UPDATE cards SET name = ?, title = ?, company = ?, email = ?, phone = ?,
	                 website = ?, address = ?, logo = ?, template_id = ?, font_family = ?,
	                 font_size = ?, text_color = ?, accent_color = ?, updated_at = ?
	          WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		card.Name, card.Title, card.Company, card.Email, card.Phone,
		card.Website, card.Address, nullString(card.Logo), card.TemplateID,
		card.Overrides.FontFamily, nullInt(card.Overrides.FontSize),
		card.Overrides.TextColor, card.Overrides.AccentColor, card.UpdatedAt,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}
	return nil
}

// Delete removes a card.
func (r *cardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted card: %w", err)
	}
	if n == 0 {
		return apperror.NewNotFound("card not found")
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

// Package cards stores business cards that users have filled in, together
// with the gallery template and customizations they picked. A card can be
// edited or deleted only with the edit key returned when it was created.
package cards

import (
	"time"

	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
)

// CardData is the contact information printed on a card.
type CardData struct {
	Name    string `json:"name" validate:"required,max=200"`
	Title   string `json:"title" validate:"required,max=200"`
	Company string `json:"company" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"max=50"`
	Website string `json:"website" validate:"max=500"`
	Address string `json:"address" validate:"max=1000"`

	// Logo is a base64 image data URL.
	Logo string `json:"logo,omitempty" validate:"omitempty,logo"`
}

// SampleData fills the gallery when no saved card is selected.
var SampleData = CardData{
	Name:    "Alex Morgan",
	Title:   "Creative Director",
	Company: "Northwind Studio",
	Email:   "alex@northwind.example",
	Phone:   "+1 555 0100",
	Website: "northwind.example",
	Address: "12 Harbor Lane, Portland",
}

// Card is a saved card.
type Card struct {
	ID string `json:"id"`
	CardData
	TemplateID  string            `json:"template_id"`
	Overrides   classic.Overrides `json:"overrides"`
	EditKeyHash string            `json:"-"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CardInput is the body of POST and PUT /api/cards.
type CardInput struct {
	CardData
	TemplateID string            `json:"template_id" validate:"required,max=16"`
	Overrides  classic.Overrides `json:"overrides"`
}

// CreateResult is returned once, when a card is created. The edit key is
// not stored in plain text and cannot be recovered later.
type CreateResult struct {
	Card    *Card  `json:"card"`
	EditKey string `json:"edit_key"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// ENTITY: Dog
// =====================================================
// Dog is one catalog entry. BasePrice is quoted per 2-hour block; order
// pricing in the booking domain derives the total from it.
type Dog struct {
	ID        uuid.UUID       `json:"id"`
	DogName   string          `json:"dog_name"`
	Breed     string          `json:"breed"`
	Feature   string          `json:"feature"`
	BasePrice decimal.Decimal `json:"base_price"`
	ImageURL  *string         `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

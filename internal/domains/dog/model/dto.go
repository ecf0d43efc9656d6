package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// CREATE DOG REQUEST
// =====================================================
type CreateDogRequest struct {
	DogName   string          `json:"dog_name" binding:"required"`
	Breed     string          `json:"breed"`
	Feature   string          `json:"feature"`
	BasePrice decimal.Decimal `json:"base_price"`
	ImageURL  *string         `json:"image_url,omitempty"`
}

// Validate validates CreateDogRequest
func (req CreateDogRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.DogName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Breed, validation.Length(0, 100)),
		validation.Field(&req.Feature, validation.Length(0, 500)),
		validation.Field(&req.BasePrice, validation.By(nonNegativePrice)),
	)
}

func nonNegativePrice(value interface{}) error {
	price, _ := value.(decimal.Decimal)
	if price.IsNegative() {
		return validation.NewError("validation_min", "must be no less than 0")
	}
	return nil
}

// =====================================================
// LIST DOGS
// =====================================================
type ListDogsRequest struct {
	// Search matches dog name and feature as a substring.
	Search string `form:"search"`
}

type ListDogsResponse struct {
	Data  []Dog `json:"data"`
	Total int   `json:"total"`
}

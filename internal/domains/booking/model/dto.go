package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var bookingDatePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// =====================================================
// CREATE BOOKING REQUEST
// =====================================================
type CreateBookingRequest struct {
	DogID       uuid.UUID `json:"dog_id" binding:"required"`
	AccountName string    `json:"account_name" binding:"required"`
	BookingDate string    `json:"booking_date" binding:"required"`
	BookingTime string    `json:"booking_time"`
	Note        *string   `json:"note,omitempty"`
}

// Validate validates CreateBookingRequest. The time range grammar itself
// is checked by the duration calculator so malformed segments surface as
// ErrMalformedTimeRange, not as a validation error.
func (req CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.DogID, validation.Required, validation.By(notNilUUID)),
		validation.Field(&req.AccountName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.BookingDate, validation.Required, validation.Match(bookingDatePattern)),
	)
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

// =====================================================
// CREATE BOOKING RESPONSE
// =====================================================
type CreateBookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	OrderNumber      string          `json:"order_number"`
	DogName          string          `json:"dog_name"`
	TotalBookingTime float64         `json:"total_booking_time"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	OrderStatus      bool            `json:"order_status"`
}

// =====================================================
// LIST BOOKINGS
// =====================================================
type ListBookingsRequest struct {
	// Search matches order number and account name as a substring.
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type ListBookingsResponse struct {
	Data  []BookingOrder `json:"data"`
	Total int            `json:"total"`
}

// =====================================================
// UPDATE BOOKING STATUS
// =====================================================
type UpdateBookingStatusRequest struct {
	OrderStatus *bool `json:"order_status" binding:"required"`
}

func (req UpdateBookingStatusRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.OrderStatus, validation.NotNil),
	)
}

type BookingStatusResponse struct {
	OrderNumber string `json:"order_number"`
	OrderStatus bool   `json:"order_status"`
}

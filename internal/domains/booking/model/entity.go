package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// BUSINESS CONSTANTS
// =====================================================
const (
	// Catalog prices are quoted per block of this many hours.
	DefaultPriceBlockHours = 2

	// Trailing window, in months, scanned by the top-dogs ranking.
	DefaultRankingWindowMonths = 4

	// Maximum number of entries a ranking returns.
	TopDogsLimit = 3

	// Minimum width the sequence part of an order number is padded to.
	// Sequences of 1000 and above widen the number, they are never truncated.
	OrderSeqPadWidth = 3
)

// =====================================================
// ENTITY: BookingOrder
// =====================================================
// BookingOrder is one grooming/boarding reservation. OrderNumber,
// TotalBookingTime and TotalPrice are derived at creation time and
// stored with the record.
type BookingOrder struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	DogID       uuid.UUID `json:"dog_id"`
	DogName     string    `json:"dog_name"`
	AccountName string    `json:"account_name"`

	// BookingDate as submitted, e.g. "2026/02/03".
	BookingDate string `json:"booking_date"`

	// BookingTimeRanges is a comma separated list of same-day
	// "HH:MM~HH:MM" ranges, e.g. "10:00~12:00,13:00~15:00".
	BookingTimeRanges string `json:"booking_time_ranges"`

	// TotalBookingTime is the booked duration in hours.
	TotalBookingTime float64         `json:"total_booking_time"`
	TotalPrice       decimal.Decimal `json:"total_price"`

	// OrderStatus: true = active, false = cancelled.
	OrderStatus bool `json:"order_status"`

	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =====================================================
// ENTITY: SequenceCounter
// =====================================================
// SequenceCounter is the per-date counter row behind order number
// allocation. One row per date key; mutated only by the atomic
// upsert-increment in the repository, never deleted.
type SequenceCounter struct {
	DateKey   string    `json:"date_key"`
	Seq       int       `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =====================================================
// TRANSIENT: RankedDogStat
// =====================================================
// RankedDogStat is one position of the top-dogs ranking, produced fresh
// per request and never persisted. The catalog fields stay nil when the
// ranked dog has no catalog entry.
type RankedDogStat struct {
	DogName string `json:"dog_name"`
	Counter int    `json:"counter"`

	DogID     *uuid.UUID       `json:"dog_id,omitempty"`
	Breed     *string          `json:"breed,omitempty"`
	Feature   *string          `json:"feature,omitempty"`
	BasePrice *decimal.Decimal `json:"base_price,omitempty"`
	ImageURL  *string          `json:"image_url,omitempty"`
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/booking/model"
)

// =====================================================
// BOOKING REPOSITORY INTERFACE
// =====================================================
type BookingRepository interface {
	// NextSequence returns the next order sequence for a digits-only date
	// key. The implementation must perform the increment-or-create as ONE
	// atomic statement: concurrent callers with the same key each get a
	// distinct, strictly increasing value starting at 1. Failures surface
	// model.ErrSequenceUnavailable; there is no non-atomic fallback.
	NextSequence(ctx context.Context, dateKey string) (int, error)

	// Booking operations
	CreateBooking(ctx context.Context, booking *model.BookingOrder) error
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*model.BookingOrder, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status bool) (*model.BookingOrder, error)

	// List operations
	ListBookings(ctx context.Context, search, sortBy, sortOrder string) ([]model.BookingOrder, int, error)

	// Ranking scans. Both return only active bookings ordered by
	// created_at ASC so the first-seen tie-break is reproducible.
	FindActiveByNumberPrefixes(ctx context.Context, prefixes []string) ([]model.BookingOrder, error)
	FindAllActive(ctx context.Context) ([]model.BookingOrder, error)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/booking/model"
)

// =====================================================
// BOOKING SERVICE INTERFACE
// =====================================================
type BookingService interface {
	// Create a booking: allocates the order number and derives duration
	// and price before persisting.
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.CreateBookingResponse, error)

	// List bookings with substring search and sorting.
	ListBookings(ctx context.Context, req model.ListBookingsRequest) (*model.ListBookingsResponse, error)

	// Activate or cancel a booking.
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status bool) (*model.BookingStatusResponse, error)
}

// =====================================================
// RANKING SERVICE INTERFACE
// =====================================================
type RankingService interface {
	// TopDogs returns the at most 3 most-booked dogs over the trailing
	// month window ending at (year, month), enriched with catalog data.
	TopDogs(ctx context.Context, year, month int) ([]model.RankedDogStat, error)
}

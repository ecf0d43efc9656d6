package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/booking/model"
	"doghotel-backend/internal/domains/booking/repository"
	dogModel "doghotel-backend/internal/domains/dog/model"
	dogRepo "doghotel-backend/internal/domains/dog/repository"
	"doghotel-backend/pkg/cache"
	"doghotel-backend/pkg/logger"
)

// Pattern covering every memoized ranking result; dropped whenever the
// underlying order set changes.
const topDogsCachePattern = "bookings:topdogs:*"

// =====================================================
// BOOKING SERVICE IMPLEMENTATION
// =====================================================
type bookingService struct {
	bookingRepo repository.BookingRepository
	dogRepo     dogRepo.DogRepository
	cache       cache.Cache
	blockHours  int
}

// NewBookingService creates a new booking service. blockHours is the
// number of hours one catalog price block covers. cache may be nil, in
// which case ranking invalidation is skipped.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	dogRepo dogRepo.DogRepository,
	cache cache.Cache,
	blockHours int,
) BookingService {
	if blockHours <= 0 {
		blockHours = model.DefaultPriceBlockHours
	}

	return &bookingService{
		bookingRepo: bookingRepo,
		dogRepo:     dogRepo,
		cache:       cache,
		blockHours:  blockHours,
	}
}

// =====================================================
// CREATE BOOKING
// =====================================================

func (s *bookingService) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.CreateBookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewBookingError(model.ErrCodeInvalidBookingDate, "Invalid booking request", err)
	}

	// Step 1: allocate the per-date sequence. This is the only write that
	// needs atomicity; everything after works with the reserved number.
	dateKey := DateKey(req.BookingDate)
	seq, err := s.bookingRepo.NextSequence(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	orderNumber, err := FormatOrderNumber(req.BookingDate, seq)
	if err != nil {
		return nil, model.NewBookingError(model.ErrCodeInvalidBookingDate, "Invalid booking date", err)
	}

	// Step 2: derive duration from the submitted time ranges.
	totalHours, err := TotalBookingHours(req.BookingTime)
	if err != nil {
		return nil, model.NewBookingError(model.ErrCodeMalformedTimeRange, "Invalid booking time", err)
	}

	// Step 3: derive the total price from the dog's base price.
	dog, err := s.dogRepo.GetDogByID(ctx, req.DogID)
	if err != nil {
		if errors.Is(err, dogModel.ErrDogNotFound) {
			return nil, fmt.Errorf("%w: %s", model.ErrDogNotFound, req.DogID)
		}
		return nil, err
	}
	totalPrice := TotalBookingPrice(dog.BasePrice, totalHours, s.blockHours)

	// Step 4: persist the combined record.
	booking := &model.BookingOrder{
		ID:                uuid.New(),
		OrderNumber:       orderNumber,
		DogID:             dog.ID,
		DogName:           dog.DogName,
		AccountName:       req.AccountName,
		BookingDate:       req.BookingDate,
		BookingTimeRanges: req.BookingTime,
		TotalBookingTime:  totalHours,
		TotalPrice:        totalPrice,
		OrderStatus:       true,
		Note:              req.Note,
	}

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateRanking(ctx)

	logger.Info("Booking created", map[string]interface{}{
		"order_number": booking.OrderNumber,
		"dog_name":     booking.DogName,
		"total_hours":  booking.TotalBookingTime,
		"total_price":  booking.TotalPrice.String(),
	})

	return &model.CreateBookingResponse{
		ID:               booking.ID,
		OrderNumber:      booking.OrderNumber,
		DogName:          booking.DogName,
		TotalBookingTime: booking.TotalBookingTime,
		TotalPrice:       booking.TotalPrice,
		OrderStatus:      booking.OrderStatus,
	}, nil
}

// =====================================================
// LIST BOOKINGS
// =====================================================

func (s *bookingService) ListBookings(ctx context.Context, req model.ListBookingsRequest) (*model.ListBookingsResponse, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "order_number"
	}
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	bookings, total, err := s.bookingRepo.ListBookings(ctx, req.Search, sortBy, sortOrder)
	if err != nil {
		return nil, err
	}

	return &model.ListBookingsResponse{
		Data:  bookings,
		Total: total,
	}, nil
}

// =====================================================
// UPDATE BOOKING STATUS
// =====================================================

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status bool) (*model.BookingStatusResponse, error) {
	booking, err := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	// A cancelled or reactivated booking changes the ranking counts.
	s.invalidateRanking(ctx)

	return &model.BookingStatusResponse{
		OrderNumber: booking.OrderNumber,
		OrderStatus: booking.OrderStatus,
	}, nil
}

// invalidateRanking drops the memoized top-dogs results. Cache failures
// are logged, not surfaced: the TTL bounds staleness either way.
func (s *bookingService) invalidateRanking(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, topDogsCachePattern); err != nil {
		logger.Error("Failed to invalidate ranking cache", err)
	}
}

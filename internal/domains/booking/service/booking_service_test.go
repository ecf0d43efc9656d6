package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doghotel-backend/internal/domains/booking/model"
	"doghotel-backend/pkg/cache"
)

func newBooking(bookings *fakeBookingRepository, dogs *fakeDogRepository, c *fakeCache) BookingService {
	var cacheArg cache.Cache
	if c != nil {
		cacheArg = c
	}
	return NewBookingService(bookings, dogs, cacheArg, model.DefaultPriceBlockHours)
}

func TestCreateBookingDerivesNumberHoursAndPrice(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	result, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00,13:00~15:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "20260203001", result.OrderNumber)
	assert.Equal(t, "Husky", result.DogName)
	assert.InDelta(t, 4.0, result.TotalBookingTime, 1e-9)
	// 4 hours = two 2-hour blocks at 1000 each.
	assert.True(t, result.TotalPrice.Equal(decimal.NewFromInt(2000)),
		"want 2000, got %s", result.TotalPrice)
	assert.True(t, result.OrderStatus)

	// The combined record was persisted with the derived fields.
	require.Len(t, bookings.bookings, 1)
	stored := bookings.bookings[0]
	assert.Equal(t, "20260203001", stored.OrderNumber)
	assert.Equal(t, husky.ID, stored.DogID)
	assert.InDelta(t, 4.0, stored.TotalBookingTime, 1e-9)
}

func TestCreateBookingSequencesIncrementPerDate(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	req := model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00",
	}

	first, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "20260203001", first.OrderNumber)
	assert.Equal(t, "20260203002", second.OrderNumber)

	// A different date starts its own sequence.
	req.BookingDate = "2026/02/04"
	other, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "20260204001", other.OrderNumber)
}

// The allocator contract: N concurrent allocations for one date key
// yield exactly {1..N}, no duplicates, no gaps. The production
// implementation delegates this to a single atomic upsert-increment
// statement; the fake mirrors it with a mutex.
func TestNextSequenceConcurrentAllocationsDistinct(t *testing.T) {
	repo := newFakeBookingRepository()

	const n = 100
	results := make(chan int, n)
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := repo.NextSequence(context.Background(), "20260203")
			if err != nil {
				errs <- err
				return
			}
			results <- seq
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[int]bool, n)
	for seq := range results {
		assert.False(t, seen[seq], "duplicate sequence %d", seq)
		seen[seq] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "missing sequence %d", i)
	}
}

func TestCreateBookingMalformedTimeRejected(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	_, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00-12:00",
	})
	assert.ErrorIs(t, err, model.ErrMalformedTimeRange)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingEmptyTimeIsZeroHours(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	result, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
	})
	require.NoError(t, err)
	assert.Zero(t, result.TotalBookingTime)
	assert.True(t, result.TotalPrice.IsZero())
}

func TestCreateBookingUnknownDogRejected(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}

	svc := newBooking(bookings, dogs, nil)

	_, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       uuid.New(),
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00",
	})
	assert.ErrorIs(t, err, model.ErrDogNotFound)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingSequenceUnavailable(t *testing.T) {
	bookings := newFakeBookingRepository()
	bookings.seqErr = model.ErrSequenceUnavailable
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	_, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00",
	})
	assert.ErrorIs(t, err, model.ErrSequenceUnavailable)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingValidation(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	tests := []struct {
		name string
		req  model.CreateBookingRequest
	}{
		{"missing dog", model.CreateBookingRequest{
			AccountName: "alex", BookingDate: "2026/02/03",
		}},
		{"missing account name", model.CreateBookingRequest{
			DogID: husky.ID, BookingDate: "2026/02/03",
		}},
		{"bad date format", model.CreateBookingRequest{
			DogID: husky.ID, AccountName: "alex", BookingDate: "03.02.2026",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), tt.req)
			require.Error(t, err)

			var bookingErr *model.BookingError
			assert.ErrorAs(t, err, &bookingErr)
		})
	}
}

func TestCreateBookingInvalidatesRankingCache(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	c := newFakeCache()
	require.NoError(t, c.Set(context.Background(), "bookings:topdogs:202602", []model.RankedDogStat{}, time.Minute))

	svc := newBooking(bookings, dogs, c)

	_, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00",
	})
	require.NoError(t, err)

	var stale []model.RankedDogStat
	found, err := c.Get(context.Background(), "bookings:topdogs:202602", &stale)
	require.NoError(t, err)
	assert.False(t, found, "memoized ranking should be dropped on create")
}

func TestUpdateBookingStatus(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	c := newFakeCache()
	require.NoError(t, c.Set(context.Background(), "bookings:topdogs:202602", []model.RankedDogStat{}, time.Minute))

	svc := newBooking(bookings, dogs, c)

	created, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
		DogID:       husky.ID,
		AccountName: "alex",
		BookingDate: "2026/02/03",
		BookingTime: "10:00~12:00",
	})
	require.NoError(t, err)

	result, err := svc.UpdateBookingStatus(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, result.OrderNumber)
	assert.False(t, result.OrderStatus)

	// Cancellation changes the ranking input, so the memo is dropped.
	var stale []model.RankedDogStat
	found, err := c.Get(context.Background(), "bookings:topdogs:202602", &stale)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := newBooking(newFakeBookingRepository(), &fakeDogRepository{}, nil)

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, model.ErrBookingNotFound)
}

func TestListBookingsDefaults(t *testing.T) {
	bookings := newFakeBookingRepository()
	dogs := &fakeDogRepository{}
	husky := seedDog(dogs, "Husky", 1000)

	svc := newBooking(bookings, dogs, nil)

	for _, date := range []string{"2026/02/03", "2026/02/04"} {
		_, err := svc.CreateBooking(context.Background(), model.CreateBookingRequest{
			DogID:       husky.ID,
			AccountName: "alex",
			BookingDate: date,
			BookingTime: "10:00~12:00",
		})
		require.NoError(t, err)
	}

	result, err := svc.ListBookings(context.Background(), model.ListBookingsRequest{Search: "20260203"})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, 2, result.Total)
}

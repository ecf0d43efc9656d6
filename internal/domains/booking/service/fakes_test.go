package service

import (
	"context"
	"encoding/json"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/booking/model"
	dogModel "doghotel-backend/internal/domains/dog/model"
)

// =====================================================
// FAKE BOOKING REPOSITORY
// =====================================================

type fakeBookingRepository struct {
	mu        sync.Mutex
	sequences map[string]int
	bookings  []model.BookingOrder

	seqErr error

	prefixScans int
	fullScans   int
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{
		sequences: make(map[string]int),
	}
}

func (f *fakeBookingRepository) NextSequence(_ context.Context, dateKey string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seqErr != nil {
		return 0, f.seqErr
	}

	f.sequences[dateKey]++
	return f.sequences[dateKey], nil
}

func (f *fakeBookingRepository) CreateBooking(_ context.Context, booking *model.BookingOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(len(f.bookings)) * time.Second)
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepository) GetBookingByID(_ context.Context, bookingID uuid.UUID) (*model.BookingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.ID == bookingID {
			booking := b
			return &booking, nil
		}
	}
	return nil, model.ErrBookingNotFound
}

func (f *fakeBookingRepository) UpdateBookingStatus(_ context.Context, bookingID uuid.UUID, status bool) (*model.BookingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].OrderStatus = status
			booking := f.bookings[i]
			return &booking, nil
		}
	}
	return nil, model.ErrBookingNotFound
}

func (f *fakeBookingRepository) ListBookings(_ context.Context, search, _, _ string) ([]model.BookingOrder, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []model.BookingOrder
	for _, b := range f.bookings {
		if strings.Contains(b.OrderNumber, search) || strings.Contains(b.AccountName, search) {
			matched = append(matched, b)
		}
	}
	return matched, len(f.bookings), nil
}

// FindActiveByNumberPrefixes preserves insertion order, mirroring the
// created_at ASC scan of the real repository.
func (f *fakeBookingRepository) FindActiveByNumberPrefixes(_ context.Context, prefixes []string) ([]model.BookingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prefixScans++

	var matched []model.BookingOrder
	for _, b := range f.bookings {
		if !b.OrderStatus {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(b.OrderNumber, p) {
				matched = append(matched, b)
				break
			}
		}
	}
	return matched, nil
}

func (f *fakeBookingRepository) FindAllActive(_ context.Context) ([]model.BookingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fullScans++

	var matched []model.BookingOrder
	for _, b := range f.bookings {
		if b.OrderStatus {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// =====================================================
// FAKE DOG REPOSITORY
// =====================================================

type fakeDogRepository struct {
	dogs []dogModel.Dog
}

func (f *fakeDogRepository) CreateDog(_ context.Context, dog *dogModel.Dog) error {
	f.dogs = append(f.dogs, *dog)
	return nil
}

func (f *fakeDogRepository) GetDogByID(_ context.Context, dogID uuid.UUID) (*dogModel.Dog, error) {
	for _, d := range f.dogs {
		if d.ID == dogID {
			dog := d
			return &dog, nil
		}
	}
	return nil, dogModel.ErrDogNotFound
}

// GetDogByName matches exactly, like the SQL equality predicate it
// stands in for.
func (f *fakeDogRepository) GetDogByName(_ context.Context, name string) (*dogModel.Dog, error) {
	for _, d := range f.dogs {
		if d.DogName == name {
			dog := d
			return &dog, nil
		}
	}
	return nil, dogModel.ErrDogNotFound
}

func (f *fakeDogRepository) ListDogs(_ context.Context, _ string) ([]dogModel.Dog, int, error) {
	return f.dogs, len(f.dogs), nil
}

// =====================================================
// FAKE CACHE
// =====================================================

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(_ context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key := range f.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(f.entries, key)
		}
	}
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error {
	return nil
}

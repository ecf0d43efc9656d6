package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"doghotel-backend/internal/domains/booking/model"
	"doghotel-backend/internal/domains/booking/repository"
	dogModel "doghotel-backend/internal/domains/dog/model"
	dogRepo "doghotel-backend/internal/domains/dog/repository"
	"doghotel-backend/pkg/cache"
	"doghotel-backend/pkg/logger"
)

// =====================================================
// RANKING SERVICE IMPLEMENTATION
// =====================================================
type rankingService struct {
	bookingRepo  repository.BookingRepository
	dogRepo      dogRepo.DogRepository
	cache        cache.Cache
	windowMonths int
	cacheTTL     time.Duration
}

// NewRankingService creates a new ranking service. cache may be nil to
// disable memoization (the ranking is then recomputed per request).
func NewRankingService(
	bookingRepo repository.BookingRepository,
	dogRepo dogRepo.DogRepository,
	cache cache.Cache,
	windowMonths int,
	cacheTTL time.Duration,
) RankingService {
	if windowMonths <= 0 {
		windowMonths = model.DefaultRankingWindowMonths
	}

	return &rankingService{
		bookingRepo:  bookingRepo,
		dogRepo:      dogRepo,
		cache:        cache,
		windowMonths: windowMonths,
		cacheTTL:     cacheTTL,
	}
}

// =====================================================
// TOP DOGS
// =====================================================

func (s *rankingService) TopDogs(ctx context.Context, year, month int) ([]model.RankedDogStat, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: year=%d month=%d", model.ErrInvalidPeriod, year, month)
	}

	cacheKey := fmt.Sprintf("bookings:topdogs:%04d%02d", year, month)
	if s.cache != nil {
		var cached []model.RankedDogStat
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			logger.Error("Failed to read ranking cache", err)
		} else if found {
			return cached, nil
		}
	}

	// Step 1+2: scan active bookings inside the trailing month window.
	window := MonthWindow(year, month, s.windowMonths)
	bookings, err := s.bookingRepo.FindActiveByNumberPrefixes(ctx, window)
	if err != nil {
		return nil, err
	}

	// Step 3: frequency per dog name, remembering the order in which
	// each dog was first seen during the scan.
	counts := countByDogName(bookings)

	// Step 4: with no data, or fewer distinct dogs than the ranking
	// needs, the window is too sparse to mean anything. Recount over all
	// active bookings instead.
	if len(bookings) == 0 || len(counts) < model.TopDogsLimit {
		bookings, err = s.bookingRepo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}
		counts = countByDogName(bookings)
	}

	// Step 5+6: rank and cut to the top three.
	ranked := rankDogCounts(counts, model.TopDogsLimit)

	// Step 7: enrich with catalog data, keeping the ranked order. A dog
	// missing from the catalog keeps its name and counter only.
	for i := range ranked {
		dog, err := s.dogRepo.GetDogByName(ctx, ranked[i].DogName)
		if err != nil {
			if errors.Is(err, dogModel.ErrDogNotFound) {
				logger.Warn("Ranked dog missing from catalog", map[string]interface{}{
					"dog_name": ranked[i].DogName,
				})
				continue
			}
			return nil, err
		}

		ranked[i].DogID = &dog.ID
		ranked[i].Breed = &dog.Breed
		ranked[i].Feature = &dog.Feature
		ranked[i].BasePrice = &dog.BasePrice
		ranked[i].ImageURL = dog.ImageURL
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, ranked, s.cacheTTL); err != nil {
			logger.Error("Failed to write ranking cache", err)
		}
	}

	return ranked, nil
}

// dogCount pairs a dog with its booking count and the position of its
// first occurrence in the scan.
type dogCount struct {
	name      string
	counter   int
	firstSeen int
}

func countByDogName(bookings []model.BookingOrder) []dogCount {
	index := make(map[string]int)
	var counts []dogCount

	for _, b := range bookings {
		if i, ok := index[b.DogName]; ok {
			counts[i].counter++
			continue
		}
		index[b.DogName] = len(counts)
		counts = append(counts, dogCount{
			name:      b.DogName,
			counter:   1,
			firstSeen: len(counts),
		})
	}

	return counts
}

// rankDogCounts orders by count descending; equal counts keep the order
// the dogs were first seen in the scan. The tie-break is deliberate and
// explicit rather than left to map iteration order.
func rankDogCounts(counts []dogCount, limit int) []model.RankedDogStat {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].counter > counts[j].counter
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}

	ranked := make([]model.RankedDogStat, 0, len(counts))
	for _, c := range counts {
		ranked = append(ranked, model.RankedDogStat{
			DogName: c.name,
			Counter: c.counter,
		})
	}

	return ranked
}

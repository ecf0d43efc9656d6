package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"doghotel-backend/internal/config"
	bookingHandler "doghotel-backend/internal/domains/booking/handler"
	bookingRepo "doghotel-backend/internal/domains/booking/repository"
	bookingService "doghotel-backend/internal/domains/booking/service"
	dogHandler "doghotel-backend/internal/domains/dog/handler"
	dogRepo "doghotel-backend/internal/domains/dog/repository"
	dogService "doghotel-backend/internal/domains/dog/service"
	infraCache "doghotel-backend/internal/infrastructure/cache"
	"doghotel-backend/internal/infrastructure/database"
	"doghotel-backend/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the whole dependency graph, initialized in
// dependency order: config -> infrastructure -> repositories ->
// services -> handlers. Everything is a singleton.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookingRepo bookingRepo.BookingRepository
	DogRepo     dogRepo.DogRepository

	BookingService bookingService.BookingService
	RankingService bookingService.RankingService
	DogService     dogService.DogService

	BookingHandler *bookingHandler.BookingHandler
	DogHandler     *dogHandler.DogHandler
}

// NewContainer builds and initializes the dependency graph.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: ranking falls back to recomputing
	// per request when the cache is down.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	c.BookingRepo = bookingRepo.NewPostgresBookingRepository(db.Pool)
	c.DogRepo = dogRepo.NewPostgresDogRepository(db.Pool)

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.BookingService = bookingService.NewBookingService(
		c.BookingRepo,
		c.DogRepo,
		c.Cache,
		cfg.Booking.PriceBlockHours,
	)
	c.RankingService = bookingService.NewRankingService(
		c.BookingRepo,
		c.DogRepo,
		c.Cache,
		cfg.Booking.RankingWindowMonths,
		time.Duration(cfg.Booking.RankingCacheTTL)*time.Second,
	)
	c.DogService = dogService.NewDogService(c.DogRepo)

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService, c.RankingService)
	c.DogHandler = dogHandler.NewDogHandler(c.DogService)

	log.Println("[CONTAINER] Initialized successfully")
	return c, nil
}

// Cleanup releases all held resources; call on shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("[CONTAINER] Cleanup complete")
}

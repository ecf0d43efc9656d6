package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// BookingConfig carries the booking-domain tunables.
type BookingConfig struct {
	// Catalog prices are quoted per block of this many hours.
	PriceBlockHours int
	// Trailing window, in months, scanned by the top-dogs ranking.
	RankingWindowMonths int
	// TTL in seconds for memoized ranking results.
	RankingCacheTTL int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Doghotel API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "doghotel"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Booking: BookingConfig{
			PriceBlockHours:     getEnvInt("BOOKING_PRICE_BLOCK_HOURS", 2),
			RankingWindowMonths: getEnvInt("BOOKING_RANKING_WINDOW_MONTHS", 4),
			RankingCacheTTL:     getEnvInt("BOOKING_RANKING_CACHE_TTL", 300),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	if c.Booking.PriceBlockHours <= 0 {
		return fmt.Errorf("BOOKING_PRICE_BLOCK_HOURS must be positive")
	}
	if c.Booking.RankingWindowMonths <= 0 {
		return fmt.Errorf("BOOKING_RANKING_WINDOW_MONTHS must be positive")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"doghotel-backend/internal/domains/booking/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================
type postgresBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &postgresBookingRepository{
		pool: pool,
	}
}

// Sortable columns for ListBookings. Anything else falls back to the
// order number.
var bookingSortColumns = map[string]string{
	"order_number": "order_number",
	"account_name": "account_name",
	"total_price":  "total_price",
	"created_at":   "created_at",
}

// =====================================================
// SEQUENCE ALLOCATION
// =====================================================

// NextSequence runs the upsert-increment as a single statement so the
// read-modify-write happens inside the database. A separate SELECT
// followed by UPDATE would reintroduce the duplicate-number race this
// table exists to prevent.
func (r *postgresBookingRepository) NextSequence(ctx context.Context, dateKey string) (int, error) {
	query := `
		INSERT INTO booking_sequences (date_key, seq)
		VALUES ($1, 1)
		ON CONFLICT (date_key)
		DO UPDATE SET seq = booking_sequences.seq + 1, updated_at = NOW()
		RETURNING seq
	`

	var seq int
	err := r.pool.QueryRow(ctx, query, dateKey).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrSequenceUnavailable, err)
	}

	return seq, nil
}

// =====================================================
// CREATE BOOKING
// =====================================================

func (r *postgresBookingRepository) CreateBooking(ctx context.Context, booking *model.BookingOrder) error {
	query := `
		INSERT INTO booking_orders (
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11
		)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		booking.ID,
		booking.OrderNumber,
		booking.DogID,
		booking.DogName,
		booking.AccountName,
		booking.BookingDate,
		booking.BookingTimeRanges,
		booking.TotalBookingTime,
		booking.TotalPrice,
		booking.OrderStatus,
		booking.Note,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// =====================================================
// GET BOOKING
// =====================================================

func (r *postgresBookingRepository) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*model.BookingOrder, error) {
	query := `
		SELECT
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note, created_at, updated_at
		FROM booking_orders
		WHERE id = $1
	`

	var booking model.BookingOrder
	err := r.pool.QueryRow(ctx, query, bookingID).Scan(
		&booking.ID,
		&booking.OrderNumber,
		&booking.DogID,
		&booking.DogName,
		&booking.AccountName,
		&booking.BookingDate,
		&booking.BookingTimeRanges,
		&booking.TotalBookingTime,
		&booking.TotalPrice,
		&booking.OrderStatus,
		&booking.Note,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return &booking, nil
}

// =====================================================
// UPDATE BOOKING STATUS
// =====================================================

func (r *postgresBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status bool) (*model.BookingOrder, error) {
	query := `
		UPDATE booking_orders
		SET order_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note, created_at, updated_at
	`

	var booking model.BookingOrder
	err := r.pool.QueryRow(ctx, query, status, bookingID).Scan(
		&booking.ID,
		&booking.OrderNumber,
		&booking.DogID,
		&booking.DogName,
		&booking.AccountName,
		&booking.BookingDate,
		&booking.BookingTimeRanges,
		&booking.TotalBookingTime,
		&booking.TotalPrice,
		&booking.OrderStatus,
		&booking.Note,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return &booking, nil
}

// =====================================================
// LIST BOOKINGS
// =====================================================

func (r *postgresBookingRepository) ListBookings(ctx context.Context, search, sortBy, sortOrder string) ([]model.BookingOrder, int, error) {
	column, ok := bookingSortColumns[sortBy]
	if !ok {
		column = "order_number"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note, created_at, updated_at
		FROM booking_orders
		WHERE order_number ILIKE $1 OR account_name ILIKE $1
		ORDER BY %s %s
	`, column, direction)

	pattern := "%" + search + "%"

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM booking_orders`
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return bookings, total, nil
}

// =====================================================
// RANKING SCANS
// =====================================================

// FindActiveByNumberPrefixes matches active bookings whose order number
// starts with any of the given keys. Order numbers begin with the
// digits-only date, so "YYYYMM" keys select whole calendar months.
func (r *postgresBookingRepository) FindActiveByNumberPrefixes(ctx context.Context, prefixes []string) ([]model.BookingOrder, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}

	patterns := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		patterns = append(patterns, p+"%")
	}

	query := `
		SELECT
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note, created_at, updated_at
		FROM booking_orders
		WHERE order_status = TRUE AND order_number LIKE ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by number prefixes: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *postgresBookingRepository) FindAllActive(ctx context.Context) ([]model.BookingOrder, error) {
	query := `
		SELECT
			id, order_number, dog_id, dog_name, account_name,
			booking_date, booking_time_ranges, total_booking_time,
			total_price, order_status, note, created_at, updated_at
		FROM booking_orders
		WHERE order_status = TRUE
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find active bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]model.BookingOrder, error) {
	var bookings []model.BookingOrder
	for rows.Next() {
		var booking model.BookingOrder
		err := rows.Scan(
			&booking.ID,
			&booking.OrderNumber,
			&booking.DogID,
			&booking.DogName,
			&booking.AccountName,
			&booking.BookingDate,
			&booking.BookingTimeRanges,
			&booking.TotalBookingTime,
			&booking.TotalPrice,
			&booking.OrderStatus,
			&booking.Note,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", rows.Err())
	}

	return bookings, nil
}

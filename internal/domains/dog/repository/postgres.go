package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"doghotel-backend/internal/domains/dog/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================
type postgresDogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDogRepository(pool *pgxpool.Pool) DogRepository {
	return &postgresDogRepository{
		pool: pool,
	}
}

func (r *postgresDogRepository) CreateDog(ctx context.Context, dog *model.Dog) error {
	query := `
		INSERT INTO dogs (
			id, dog_name, breed, feature, base_price, image_url
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		dog.ID,
		dog.DogName,
		dog.Breed,
		dog.Feature,
		dog.BasePrice,
		dog.ImageURL,
	).Scan(&dog.CreatedAt, &dog.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDogNameTaken
		}
		return fmt.Errorf("failed to create dog: %w", err)
	}

	return nil
}

func (r *postgresDogRepository) GetDogByID(ctx context.Context, dogID uuid.UUID) (*model.Dog, error) {
	query := `
		SELECT id, dog_name, breed, feature, base_price, image_url, created_at, updated_at
		FROM dogs
		WHERE id = $1
	`

	return r.getDog(ctx, query, dogID)
}

// GetDogByName uses strict equality, not a pattern match, so "RR" never
// resolves to "RRR".
func (r *postgresDogRepository) GetDogByName(ctx context.Context, name string) (*model.Dog, error) {
	query := `
		SELECT id, dog_name, breed, feature, base_price, image_url, created_at, updated_at
		FROM dogs
		WHERE dog_name = $1
	`

	return r.getDog(ctx, query, name)
}

func (r *postgresDogRepository) getDog(ctx context.Context, query string, arg interface{}) (*model.Dog, error) {
	var dog model.Dog
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&dog.ID,
		&dog.DogName,
		&dog.Breed,
		&dog.Feature,
		&dog.BasePrice,
		&dog.ImageURL,
		&dog.CreatedAt,
		&dog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to get dog: %w", err)
	}

	return &dog, nil
}

func (r *postgresDogRepository) ListDogs(ctx context.Context, search string) ([]model.Dog, int, error) {
	query := `
		SELECT id, dog_name, breed, feature, base_price, image_url, created_at, updated_at
		FROM dogs
		WHERE dog_name ILIKE $1 OR feature ILIKE $1
		ORDER BY dog_name ASC
	`

	pattern := "%" + search + "%"

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dogs: %w", err)
	}
	defer rows.Close()

	var dogs []model.Dog
	for rows.Next() {
		var dog model.Dog
		err := rows.Scan(
			&dog.ID,
			&dog.DogName,
			&dog.Breed,
			&dog.Feature,
			&dog.BasePrice,
			&dog.ImageURL,
			&dog.CreatedAt,
			&dog.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan dog: %w", err)
		}
		dogs = append(dogs, dog)
	}

	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating dogs: %w", rows.Err())
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM dogs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count dogs: %w", err)
	}

	return dogs, total, nil
}

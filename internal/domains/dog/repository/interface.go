package repository

import (
	"context"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/dog/model"
)

// =====================================================
// DOG REPOSITORY INTERFACE
// =====================================================
type DogRepository interface {
	CreateDog(ctx context.Context, dog *model.Dog) error
	GetDogByID(ctx context.Context, dogID uuid.UUID) (*model.Dog, error)

	// GetDogByName matches the name exactly. Names that are a prefix of
	// one another ("RR" vs "RRR") must never cross-match; the ranking
	// enrichment depends on this.
	GetDogByName(ctx context.Context, name string) (*model.Dog, error)

	ListDogs(ctx context.Context, search string) ([]model.Dog, int, error)
}

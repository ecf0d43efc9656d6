package service

import (
	"context"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/dog/model"
)

// =====================================================
// DOG SERVICE INTERFACE
// =====================================================
type DogService interface {
	CreateDog(ctx context.Context, req model.CreateDogRequest) (*model.Dog, error)
	GetDog(ctx context.Context, dogID uuid.UUID) (*model.Dog, error)
	ListDogs(ctx context.Context, req model.ListDogsRequest) (*model.ListDogsResponse, error)
}

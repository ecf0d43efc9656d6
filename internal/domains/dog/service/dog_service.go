package service

import (
	"context"

	"github.com/google/uuid"

	"doghotel-backend/internal/domains/dog/model"
	"doghotel-backend/internal/domains/dog/repository"
)

// =====================================================
// DOG SERVICE IMPLEMENTATION
// =====================================================
type dogService struct {
	dogRepo repository.DogRepository
}

// NewDogService creates a new dog service
func NewDogService(dogRepo repository.DogRepository) DogService {
	return &dogService{
		dogRepo: dogRepo,
	}
}

func (s *dogService) CreateDog(ctx context.Context, req model.CreateDogRequest) (*model.Dog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dog := &model.Dog{
		ID:        uuid.New(),
		DogName:   req.DogName,
		Breed:     req.Breed,
		Feature:   req.Feature,
		BasePrice: req.BasePrice,
		ImageURL:  req.ImageURL,
	}

	if err := s.dogRepo.CreateDog(ctx, dog); err != nil {
		return nil, err
	}

	return dog, nil
}

func (s *dogService) GetDog(ctx context.Context, dogID uuid.UUID) (*model.Dog, error) {
	return s.dogRepo.GetDogByID(ctx, dogID)
}

func (s *dogService) ListDogs(ctx context.Context, req model.ListDogsRequest) (*model.ListDogsResponse, error) {
	dogs, total, err := s.dogRepo.ListDogs(ctx, req.Search)
	if err != nil {
		return nil, err
	}

	return &model.ListDogsResponse{
		Data:  dogs,
		Total: total,
	}, nil
}

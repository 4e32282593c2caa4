package usecase

import (
	"context"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
	"pawmatch/pkg/geo"
)

type DogUseCase struct {
	dogRepo         repository.DogRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
}

func NewDogUseCase(dogRepo repository.DogRepository, defaultRadiusKm, maxRadiusKm float64) *DogUseCase {
	return &DogUseCase{
		dogRepo:         dogRepo,
		defaultRadiusKm: defaultRadiusKm,
		maxRadiusKm:     maxRadiusKm,
	}
}

type CreateDogInput struct {
	Name        string
	Breed       string
	Age         int
	Gender      string
	Photos      []string
	Description string
	Location    entity.Location
	Traits      *entity.Traits
	MedicalInfo *entity.MedicalInfo
}

type UpdateDogInput struct {
	Name        string
	Breed       string
	Age         *int
	Gender      string
	Photos      []string
	Description *string
	Location    *entity.Location
	Traits      *entity.Traits
	MedicalInfo *entity.MedicalInfo
}

// Create stores a new dog profile. The owner is always the caller; an owner
// id supplied by the client is ignored.
func (uc *DogUseCase) Create(ctx context.Context, callerID string, input CreateDogInput) (*entity.Dog, error) {
	dog := &entity.Dog{
		OwnerID:     callerID,
		Name:        input.Name,
		Breed:       input.Breed,
		Age:         input.Age,
		Gender:      input.Gender,
		Photos:      input.Photos,
		Description: input.Description,
		Location:    input.Location,
		Traits:      input.Traits,
		MedicalInfo: input.MedicalInfo,
	}
	if dog.Photos == nil {
		dog.Photos = []string{}
	}

	if err := uc.dogRepo.Create(ctx, dog); err != nil {
		return nil, err
	}

	return dog, nil
}

func (uc *DogUseCase) GetByID(ctx context.Context, id string) (*entity.Dog, error) {
	return uc.dogRepo.GetByID(ctx, id)
}

func (uc *DogUseCase) ListMine(ctx context.Context, callerID string) ([]*entity.Dog, error) {
	return uc.dogRepo.ListByOwner(ctx, callerID)
}

func (uc *DogUseCase) Update(ctx context.Context, callerID, dogID string, input UpdateDogInput) (*entity.Dog, error) {
	dog, err := uc.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != callerID {
		return nil, errors.Forbidden("Not authorized to update this dog", nil)
	}

	if input.Name != "" {
		dog.Name = input.Name
	}
	if input.Breed != "" {
		dog.Breed = input.Breed
	}
	if input.Age != nil {
		dog.Age = *input.Age
	}
	if input.Gender != "" {
		dog.Gender = input.Gender
	}
	if input.Photos != nil {
		dog.Photos = input.Photos
	}
	if input.Description != nil {
		dog.Description = *input.Description
	}
	if input.Location != nil {
		dog.Location = *input.Location
	}
	if input.Traits != nil {
		dog.Traits = input.Traits
	}
	if input.MedicalInfo != nil {
		dog.MedicalInfo = input.MedicalInfo
	}

	if err := uc.dogRepo.Update(ctx, dog); err != nil {
		return nil, err
	}

	return dog, nil
}

func (uc *DogUseCase) Delete(ctx context.Context, callerID, dogID string) error {
	dog, err := uc.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return err
	}
	if dog.OwnerID != callerID {
		return errors.Forbidden("Not authorized to delete this dog", nil)
	}

	return uc.dogRepo.Delete(ctx, dogID)
}

// Nearby scans the full collection and keeps dogs within radiusKm of the
// given point, excluding the caller's own dogs. Linear on purpose: the
// collection is small and a spatial index is out of scope.
func (uc *DogUseCase) Nearby(ctx context.Context, callerID string, lat, lon, radiusKm float64) ([]*entity.Dog, error) {
	if lat < -90 || lat > 90 {
		return nil, errors.BadRequest("latitude must be between -90 and 90", nil)
	}
	if lon < -180 || lon > 180 {
		return nil, errors.BadRequest("longitude must be between -180 and 180", nil)
	}
	if radiusKm <= 0 {
		radiusKm = uc.defaultRadiusKm
	}
	if radiusKm > uc.maxRadiusKm {
		radiusKm = uc.maxRadiusKm
	}

	dogs, err := uc.dogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]*entity.Dog, 0)
	for _, dog := range dogs {
		if dog.OwnerID == callerID {
			continue
		}
		distance := geo.Distance(lat, lon, dog.Location.Latitude, dog.Location.Longitude)
		if distance <= radiusKm {
			nearby = append(nearby, dog)
		}
	}

	return nearby, nil
}

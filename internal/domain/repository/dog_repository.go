package repository

import (
	"context"

	"pawmatch/internal/domain/entity"
)

type DogRepository interface {
	Create(ctx context.Context, dog *entity.Dog) error
	GetByID(ctx context.Context, id string) (*entity.Dog, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Dog, error)
	// List returns the full collection. The nearby search scans it linearly.
	List(ctx context.Context) ([]*entity.Dog, error)
	Update(ctx context.Context, dog *entity.Dog) error
	Delete(ctx context.Context, id string) error
}

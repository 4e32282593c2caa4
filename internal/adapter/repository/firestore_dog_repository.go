package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
)

type firestoreDogRepository struct {
	client *firestore.Client
}

func NewFirestoreDogRepository(client *firestore.Client) repository.DogRepository {
	return &firestoreDogRepository{
		client: client,
	}
}

func (r *firestoreDogRepository) Create(ctx context.Context, dog *entity.Dog) error {
	if dog.ID == "" {
		dog.ID = uuid.New().String()
	}

	now := time.Now()
	dog.CreatedAt = now
	dog.UpdatedAt = now

	_, err := r.client.Collection("dogs").Doc(dog.ID).Set(ctx, dog)
	if err != nil {
		return errors.Internal("Failed to create dog", err)
	}

	return nil
}

func (r *firestoreDogRepository) GetByID(ctx context.Context, id string) (*entity.Dog, error) {
	doc, err := r.client.Collection("dogs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Dog", err)
		}
		return nil, errors.Internal("Failed to get dog", err)
	}

	var dog entity.Dog
	if err := doc.DataTo(&dog); err != nil {
		return nil, errors.Internal("Failed to parse dog data", err)
	}

	return &dog, nil
}

func (r *firestoreDogRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Dog, error) {
	query := r.client.Collection("dogs").Where("ownerId", "==", ownerID)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreDogRepository) List(ctx context.Context) ([]*entity.Dog, error) {
	return r.collect(r.client.Collection("dogs").Documents(ctx))
}

func (r *firestoreDogRepository) Update(ctx context.Context, dog *entity.Dog) error {
	dog.UpdatedAt = time.Now()

	_, err := r.client.Collection("dogs").Doc(dog.ID).Set(ctx, dog)
	if err != nil {
		return errors.Internal("Failed to update dog", err)
	}

	return nil
}

func (r *firestoreDogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("dogs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete dog", err)
	}
	return nil
}

func (r *firestoreDogRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Dog, error) {
	var dogs []*entity.Dog

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate dogs", err)
		}

		var dog entity.Dog
		if err := doc.DataTo(&dog); err != nil {
			return nil, errors.Internal("Failed to parse dog data", err)
		}
		dogs = append(dogs, &dog)
	}

	return dogs, nil
}

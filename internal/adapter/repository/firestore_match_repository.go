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

// Firestore "in" filters accept a bounded number of values per query.
const inFilterLimit = 10

type firestoreMatchRepository struct {
	client *firestore.Client
}

func NewFirestoreMatchRepository(client *firestore.Client) repository.MatchRepository {
	return &firestoreMatchRepository{
		client: client,
	}
}

func (r *firestoreMatchRepository) Create(ctx context.Context, match *entity.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	match.PairKey = entity.PairKey(match.Dog1ID, match.Dog2ID)

	now := time.Now()
	match.CreatedAt = now
	match.UpdatedAt = now

	docRef := r.client.Collection("matches").Doc(match.ID)

	// The pair-uniqueness check and the write happen in one transaction so two
	// concurrent creates for the same dog pair cannot both commit.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.client.Collection("matches").Where("pairKey", "==", match.PairKey).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return errors.Conflict("Match already exists between these dogs")
		}
		return tx.Create(docRef, match)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create match", err)
	}

	return nil
}

func (r *firestoreMatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	doc, err := r.client.Collection("matches").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Match", err)
		}
		return nil, errors.Internal("Failed to get match", err)
	}

	var match entity.Match
	if err := doc.DataTo(&match); err != nil {
		return nil, errors.Internal("Failed to parse match data", err)
	}

	return &match, nil
}

func (r *firestoreMatchRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection("matches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update match status", err)
	}
	return nil
}

func (r *firestoreMatchRepository) ListByDogIDs(ctx context.Context, dogIDs []string) ([]*entity.Match, error) {
	if len(dogIDs) == 0 {
		return nil, nil
	}

	var matches []*entity.Match
	for start := 0; start < len(dogIDs); start += inFilterLimit {
		end := start + inFilterLimit
		if end > len(dogIDs) {
			end = len(dogIDs)
		}
		chunk := dogIDs[start:end]

		for _, field := range []string{"dog1Id", "dog2Id"} {
			query := r.client.Collection("matches").Where(field, "in", chunk)
			chunkMatches, err := r.collect(query.Documents(ctx))
			if err != nil {
				return nil, err
			}
			matches = append(matches, chunkMatches...)
		}
	}

	return matches, nil
}

func (r *firestoreMatchRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Match, error) {
	var matches []*entity.Match

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate matches", err)
		}

		var match entity.Match
		if err := doc.DataTo(&match); err != nil {
			return nil, errors.Internal("Failed to parse match data", err)
		}
		matches = append(matches, &match)
	}

	return matches, nil
}

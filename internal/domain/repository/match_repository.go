package repository

import (
	"context"

	"pawmatch/internal/domain/entity"
)

type MatchRepository interface {
	// Create persists the match inside a transaction that enforces at most one
	// match per unordered dog pair. A duplicate pair yields a CONFLICT error.
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// ListByDogIDs returns the union of matches where any of the given dogs
	// appears as dog1 with those where it appears as dog2. Duplicates are not
	// removed.
	ListByDogIDs(ctx context.Context, dogIDs []string) ([]*entity.Match, error)
}

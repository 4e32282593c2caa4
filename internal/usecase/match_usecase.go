package usecase

import (
	"context"
	"fmt"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	dogRepo   repository.DogRepository
	notifier  Notifier
}

func NewMatchUseCase(matchRepo repository.MatchRepository, dogRepo repository.DogRepository, notifier Notifier) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		dogRepo:   dogRepo,
		notifier:  notifier,
	}
}

type CreateMatchInput struct {
	Dog1ID           string
	Dog2ID           string
	MatchPreferences *entity.MatchPreferences
}

func (uc *MatchUseCase) Create(ctx context.Context, callerID string, input CreateMatchInput) (*entity.Match, error) {
	if input.Dog1ID == input.Dog2ID {
		return nil, errors.BadRequest("A dog cannot be matched with itself", nil)
	}

	dog1, err := uc.dogRepo.GetByID(ctx, input.Dog1ID)
	if err != nil {
		return nil, err
	}
	if dog1.OwnerID != callerID {
		return nil, errors.Forbidden("Not authorized to create a match for this dog", nil)
	}

	dog2, err := uc.dogRepo.GetByID(ctx, input.Dog2ID)
	if err != nil {
		return nil, err
	}

	match := &entity.Match{
		Dog1ID:           input.Dog1ID,
		Dog2ID:           input.Dog2ID,
		Status:           entity.MatchStatusPending,
		MatchPreferences: input.MatchPreferences,
	}

	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, dog2.OwnerID, entity.NotificationTypeMatchRequest,
		"New Match Request!",
		fmt.Sprintf("%s wants to match with your dog!", dog1.Name),
		map[string]string{"matchId": match.ID, "dogId": dog1.ID})

	return match, nil
}

func (uc *MatchUseCase) GetByID(ctx context.Context, callerID, matchID string) (*entity.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	ok, err := uc.isParticipant(ctx, match, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Forbidden("Not authorized to view this match", nil)
	}

	return match, nil
}

// UpdateStatus lets the owner of dog2 accept or reject a pending match.
func (uc *MatchUseCase) UpdateStatus(ctx context.Context, callerID, matchID, status string) (*entity.Match, error) {
	if status != entity.MatchStatusAccepted && status != entity.MatchStatusRejected {
		return nil, errors.BadRequest("status must be accepted or rejected", nil)
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != entity.MatchStatusPending {
		return nil, errors.BadRequest("Match is not pending", nil)
	}

	dog2, err := uc.dogRepo.GetByID(ctx, match.Dog2ID)
	if err != nil {
		return nil, err
	}
	if dog2.OwnerID != callerID {
		return nil, errors.Forbidden("Not authorized to update this match", nil)
	}

	if err := uc.matchRepo.UpdateStatus(ctx, matchID, status); err != nil {
		return nil, err
	}
	match.Status = status

	dog1, err := uc.dogRepo.GetByID(ctx, match.Dog1ID)
	if err == nil {
		uc.notifier.Notify(ctx, dog1.OwnerID, entity.NotificationTypeMatchUpdate,
			"Match Update!",
			fmt.Sprintf("%s has %s your match request!", dog2.Name, status),
			map[string]string{"matchId": match.ID})
	}

	return match, nil
}

// ListMine returns the union of matches where the caller's dogs appear on
// either side. The union is returned as-is, without de-duplication.
func (uc *MatchUseCase) ListMine(ctx context.Context, callerID string) ([]*entity.Match, error) {
	dogs, err := uc.dogRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	dogIDs := make([]string, 0, len(dogs))
	for _, dog := range dogs {
		dogIDs = append(dogIDs, dog.ID)
	}

	matches, err := uc.matchRepo.ListByDogIDs(ctx, dogIDs)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []*entity.Match{}
	}

	return matches, nil
}

// IsParticipant reports whether the user owns one of the two dogs in the
// match. The WebSocket manager uses it to authorize room joins.
func (uc *MatchUseCase) IsParticipant(ctx context.Context, matchID, userID string) (bool, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return false, err
	}
	return uc.isParticipant(ctx, match, userID)
}

func (uc *MatchUseCase) isParticipant(ctx context.Context, match *entity.Match, userID string) (bool, error) {
	for _, dogID := range []string{match.Dog1ID, match.Dog2ID} {
		dog, err := uc.dogRepo.GetByID(ctx, dogID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				// Orphaned side of the match: the dog's owner was deleted.
				continue
			}
			return false, err
		}
		if dog.OwnerID == userID {
			return true, nil
		}
	}
	return false, nil
}

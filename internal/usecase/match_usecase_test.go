package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pawmatch/internal/domain/entity"
	"pawmatch/pkg/errors"
)

type matchFixture struct {
	uc        *MatchUseCase
	dogRepo   *fakeDogRepo
	matchRepo *fakeMatchRepo
	notifier  *fakeNotifier

	dog1 *entity.Dog // owned by user-1
	dog2 *entity.Dog // owned by user-2
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()
	ctx := context.Background()

	dogRepo := newFakeDogRepo()
	matchRepo := newFakeMatchRepo()
	notifier := &fakeNotifier{}

	dog1 := &entity.Dog{OwnerID: "user-1", Name: "Rex", Breed: "Labrador", Age: 3, Gender: "male"}
	assert.NoError(t, dogRepo.Create(ctx, dog1))
	dog2 := &entity.Dog{OwnerID: "user-2", Name: "Luna", Breed: "Husky", Age: 2, Gender: "female"}
	assert.NoError(t, dogRepo.Create(ctx, dog2))

	return &matchFixture{
		uc:        NewMatchUseCase(matchRepo, dogRepo, notifier),
		dogRepo:   dogRepo,
		matchRepo: matchRepo,
		notifier:  notifier,
		dog1:      dog1,
		dog2:      dog2,
	}
}

func TestMatchCreate(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.uc.Create(context.Background(), "user-1", CreateMatchInput{
		Dog1ID: f.dog1.ID,
		Dog2ID: f.dog2.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.MatchStatusPending, match.Status)
	assert.NotEmpty(t, match.ID)

	// The other owner gets a match_request notification.
	assert.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "user-2", f.notifier.sent[0].UserID)
	assert.Equal(t, entity.NotificationTypeMatchRequest, f.notifier.sent[0].Type)
}

func TestMatchCreateRejectsSelfMatch(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.uc.Create(context.Background(), "user-1", CreateMatchInput{
		Dog1ID: f.dog1.ID,
		Dog2ID: f.dog1.ID,
	})

	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestMatchCreateRequiresOwnedDog1(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.uc.Create(context.Background(), "user-2", CreateMatchInput{
		Dog1ID: f.dog1.ID,
		Dog2ID: f.dog2.ID,
	})

	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, f.matchRepo.matches)
	assert.Empty(t, f.notifier.sent)
}

func TestMatchCreateDuplicatePairConflicts(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	// Same pair from the other direction still collides.
	_, err = f.uc.Create(ctx, "user-2", CreateMatchInput{Dog1ID: f.dog2.ID, Dog2ID: f.dog1.ID})
	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Len(t, f.matchRepo.matches, 1)
}

func TestMatchUpdateStatus(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	updated, err := f.uc.UpdateStatus(ctx, "user-2", match.ID, entity.MatchStatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, entity.MatchStatusAccepted, updated.Status)

	// The requester gets a match_update notification.
	last := f.notifier.sent[len(f.notifier.sent)-1]
	assert.Equal(t, "user-1", last.UserID)
	assert.Equal(t, entity.NotificationTypeMatchUpdate, last.Type)
}

func TestMatchUpdateStatusOnlyDog2Owner(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	// The requester cannot accept their own request.
	_, err = f.uc.UpdateStatus(ctx, "user-1", match.ID, entity.MatchStatusAccepted)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	got, err := f.matchRepo.GetByID(ctx, match.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.MatchStatusPending, got.Status)
}

func TestMatchUpdateStatusRejectsInvalidTransitions(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	// "pending" is not an acceptable target status.
	_, err = f.uc.UpdateStatus(ctx, "user-2", match.ID, entity.MatchStatusPending)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = f.uc.UpdateStatus(ctx, "user-2", match.ID, entity.MatchStatusRejected)
	assert.NoError(t, err)

	// Once settled, the status is final.
	_, err = f.uc.UpdateStatus(ctx, "user-2", match.ID, entity.MatchStatusAccepted)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestMatchGetByIDRequiresParticipant(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	_, err = f.uc.GetByID(ctx, "user-2", match.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetByID(ctx, "user-3", match.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMatchListMine(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	matches, err := f.uc.ListMine(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, match.ID, matches[0].ID)

	// A user with no dogs gets an empty slice, not nil.
	matches, err = f.uc.ListMine(ctx, "user-3")
	assert.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchIsParticipant(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	ok, err := f.uc.IsParticipant(ctx, match.ID, "user-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.uc.IsParticipant(ctx, match.ID, "user-3")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchIsParticipantSkipsOrphanedDog(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.uc.Create(ctx, "user-1", CreateMatchInput{Dog1ID: f.dog1.ID, Dog2ID: f.dog2.ID})
	assert.NoError(t, err)

	// One side's dog disappears after its owner deleted it.
	assert.NoError(t, f.dogRepo.Delete(ctx, f.dog1.ID))

	ok, err := f.uc.IsParticipant(ctx, match.ID, "user-2")
	assert.NoError(t, err)
	assert.True(t, ok)
}

package usecase

import (
	"context"
	"fmt"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	dogRepo     repository.DogRepository
	broadcaster Broadcaster
	notifier    Notifier
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	dogRepo repository.DogRepository,
	broadcaster Broadcaster,
	notifier Notifier,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		dogRepo:     dogRepo,
		broadcaster: broadcaster,
		notifier:    notifier,
	}
}

type SendMessageInput struct {
	MatchID string
	Content string
}

// Send persists a message, fans it out to the match room and best-effort
// notifies the other owner. The caller must own one of the two dogs.
func (uc *MessageUseCase) Send(ctx context.Context, callerID string, input SendMessageInput) (*entity.Message, error) {
	match, err := uc.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	callerDog, otherDog, err := uc.sides(ctx, match, callerID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		MatchID:  input.MatchID,
		SenderID: callerID,
		Content:  input.Content,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.broadcaster.BroadcastToRoom(input.MatchID, "newMessage", message)

	if otherDog != nil {
		uc.notifier.Notify(ctx, otherDog.OwnerID, entity.NotificationTypeMessage,
			"New Message!",
			fmt.Sprintf("%s's owner sent you a message", callerDog.Name),
			map[string]string{"matchId": match.ID, "messageId": message.ID})
	}

	return message, nil
}

// ListByMatch returns the thread in ascending creation order.
func (uc *MessageUseCase) ListByMatch(ctx context.Context, callerID, matchID string) ([]*entity.Message, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if _, _, err := uc.sides(ctx, match, callerID); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.Message{}
	}

	return messages, nil
}

// MarkRead sets the read timestamp. Only the recipient may mark a message,
// and re-marking an already-read message is a no-op.
func (uc *MessageUseCase) MarkRead(ctx context.Context, callerID, messageID string) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.SenderID == callerID {
		return errors.Forbidden("Cannot mark your own message as read", nil)
	}

	match, err := uc.matchRepo.GetByID(ctx, message.MatchID)
	if err != nil {
		return err
	}
	if _, _, err := uc.sides(ctx, match, callerID); err != nil {
		return err
	}

	if message.ReadAt != nil {
		return nil
	}

	return uc.messageRepo.MarkRead(ctx, messageID)
}

// sides resolves which side of the match the caller owns. Returns a 403
// error when the caller owns neither dog.
func (uc *MessageUseCase) sides(ctx context.Context, match *entity.Match, callerID string) (callerDog, otherDog *entity.Dog, err error) {
	dog1, err1 := uc.dogRepo.GetByID(ctx, match.Dog1ID)
	dog2, err2 := uc.dogRepo.GetByID(ctx, match.Dog2ID)
	if err1 != nil && !errors.Is(err1, "NOT_FOUND") {
		return nil, nil, err1
	}
	if err2 != nil && !errors.Is(err2, "NOT_FOUND") {
		return nil, nil, err2
	}

	if dog1 != nil && dog1.OwnerID == callerID {
		return dog1, dog2, nil
	}
	if dog2 != nil && dog2.OwnerID == callerID {
		return dog2, dog1, nil
	}

	return nil, nil, errors.Forbidden("Not authorized to access messages in this match", nil)
}

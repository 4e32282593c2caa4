package usecase

import (
	"context"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
	"pawmatch/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	push             PushSender
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	push PushSender,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		push:             push,
	}
}

// Notify records a notification document and pushes it to the user's device.
// Fire and forget: every failure is logged and swallowed so the triggering
// operation is never affected.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, notificationType, title, body string, data map[string]string) {
	notification := &entity.Notification{
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to record notification for %s: %v", userID, err)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Notification target %s not found: %v", userID, err)
		return
	}
	if user.Preferences != nil && !user.Preferences.Notifications {
		return
	}

	uc.push.Send(ctx, user.FCMToken, title, body, data)
}

func (uc *NotificationUseCase) List(ctx context.Context, callerID string, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListByUser(ctx, callerID, unreadOnly)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}
	return notifications, nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, callerID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, callerID)
}

// MarkRead is idempotent: marking an already-read notification succeeds
// without touching the stored timestamp.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, callerID, id string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != callerID {
		return errors.Forbidden("Not authorized to modify this notification", nil)
	}
	if notification.ReadAt != nil {
		return nil
	}

	return uc.notificationRepo.MarkRead(ctx, id)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, callerID, id string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != callerID {
		return errors.Forbidden("Not authorized to delete this notification", nil)
	}

	return uc.notificationRepo.Delete(ctx, id)
}

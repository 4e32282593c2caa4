package usecase

import "context"

// FirebaseAuthClient is the identity-provider surface the use cases need.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	UpdateUser(ctx context.Context, uid, email, displayName string) error
	DeleteUser(ctx context.Context, uid string) error
}

// Broadcaster fans an event out to every connection in a match room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, event string, data interface{})
}

// PushSender delivers one push notification to a device token. Best effort:
// implementations log failures and never return them.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string)
}

// Notifier records a notification for a user and pushes it to their device.
type Notifier interface {
	Notify(ctx context.Context, userID, notificationType, title, body string, data map[string]string)
}

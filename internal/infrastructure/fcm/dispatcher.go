// Package fcm sends best-effort push notifications through Firebase Cloud
// Messaging. Delivery failures are logged and swallowed so domain operations
// never fail because a push could not be sent.
package fcm

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"pawmatch/pkg/logger"
)

type Dispatcher struct {
	client *messaging.Client
}

func NewDispatcher(client *messaging.Client) *Dispatcher {
	return &Dispatcher{
		client: client,
	}
}

// Send pushes a notification to a single device token. A missing token is a
// silent no-op.
func (d *Dispatcher) Send(ctx context.Context, token, title, body string, data map[string]string) {
	if token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := d.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) {
			logger.Warn("FCM token no longer registered: %v", err)
			return
		}
		logger.Error("Failed to send push notification: %v", err)
	}
}

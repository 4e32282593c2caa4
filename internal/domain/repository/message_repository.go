package repository

import (
	"context"

	"pawmatch/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"pawmatch/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update writes the user document. When the email changed, the write runs
	// inside a transaction that re-checks email uniqueness.
	Update(ctx context.Context, user *entity.User) error
	UpdateFCMToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)
}

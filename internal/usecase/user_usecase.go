package usecase

import (
	"context"
	"time"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/domain/repository"
	"pawmatch/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateProfileInput struct {
	Name        string
	Email       string
	PhoneNumber string
	PhotoURL    string
	Preferences *entity.Preferences
}

type UpdatePreferencesInput struct {
	Notifications bool
	EmailUpdates  bool
	Radius        float64
}

// List returns every user. There is deliberately no admin gate here.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, callerID, userID string, input UpdateProfileInput) (*entity.User, error) {
	if callerID != userID {
		return nil, errors.Forbidden("Not authorized to update this profile", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	authEmail, authName := "", ""
	if input.Name != "" && input.Name != user.Name {
		user.Name = input.Name
		authName = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		user.Email = input.Email
		authEmail = input.Email
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	if input.Preferences != nil {
		if input.Preferences.Radius < 1 || input.Preferences.Radius > 100 {
			return nil, errors.BadRequest("radius must be between 1 and 100", nil)
		}
		user.Preferences = input.Preferences
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Keep the Auth account in sync when email or name changed.
	if authEmail != "" || authName != "" {
		if err := uc.firebaseAuth.UpdateUser(ctx, userID, authEmail, authName); err != nil {
			return nil, errors.Internal("Failed to update auth account", err)
		}
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePreferences(ctx context.Context, callerID, userID string, input UpdatePreferencesInput) error {
	if callerID != userID {
		return errors.Forbidden("Not authorized to update these preferences", nil)
	}
	if input.Radius < 1 || input.Radius > 100 {
		return errors.BadRequest("radius must be between 1 and 100", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Preferences = &entity.Preferences{
		Notifications: input.Notifications,
		EmailUpdates:  input.EmailUpdates,
		Radius:        input.Radius,
	}
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}

func (uc *UserUseCase) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return errors.BadRequest("fcm_token is required", nil)
	}
	return uc.userRepo.UpdateFCMToken(ctx, userID, token)
}

// Delete removes the account and its user document. Dogs, matches and
// messages are left in place; orphan cleanup is out of scope.
func (uc *UserUseCase) Delete(ctx context.Context, callerID, userID string) error {
	if callerID != userID {
		return errors.Forbidden("Not authorized to delete this account", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, userID); err != nil {
		return errors.Internal("Failed to delete auth account", err)
	}

	return uc.userRepo.Delete(ctx, userID)
}

package handler

import (
	"pawmatch/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	dogHandler          *DogHandler
	matchHandler        *MatchHandler
	messageHandler      *MessageHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	dogUseCase *usecase.DogUseCase,
	matchUseCase *usecase.MatchUseCase,
	messageUseCase *usecase.MessageUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase, userUseCase)
	userHandler = NewUserHandler(userUseCase)
	dogHandler = NewDogHandler(dogUseCase)
	matchHandler = NewMatchHandler(matchUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetDogHandler() *DogHandler {
	return dogHandler
}

func GetMatchHandler() *MatchHandler {
	return matchHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"pawmatch/internal/adapter/api"
	"pawmatch/internal/adapter/api/handler"
	apimiddleware "pawmatch/internal/adapter/api/middleware"
	"pawmatch/internal/adapter/api/router"
	"pawmatch/internal/adapter/repository"
	"pawmatch/internal/infrastructure/fcm"
	"pawmatch/internal/infrastructure/firebase"
	"pawmatch/internal/infrastructure/websocket"
	"pawmatch/internal/usecase"
	"pawmatch/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		serviceAccountPath := cfg.ServiceAccountPath
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	messagingClient, err := firebaseApp.Messaging(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Messaging: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	dogRepo := repository.NewFirestoreDogRepository(firestoreClient)
	matchRepo := repository.NewFirestoreMatchRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	pushDispatcher := fcm.NewDispatcher(messagingClient)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	dogUseCase := usecase.NewDogUseCase(dogRepo, cfg.DefaultRadiusKm, cfg.MaxRadiusKm)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, pushDispatcher)
	matchUseCase := usecase.NewMatchUseCase(matchRepo, dogRepo, notificationUseCase)

	wsManager := websocket.NewManager(matchUseCase)
	wsManager.Start(ctx)

	messageUseCase := usecase.NewMessageUseCase(messageRepo, matchRepo, dogRepo, wsManager, notificationUseCase)

	handler.Setup(authUseCase, userUseCase, dogUseCase, matchUseCase, messageUseCase, notificationUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	wsHandler := handler.NewWebSocketHandler(wsManager, firebaseAuthClient)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

package router

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/handler"
	"pawmatch/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.PUT("/fcm-token", authHandler.UpdateFCMToken)
}

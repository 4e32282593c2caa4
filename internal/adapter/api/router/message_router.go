package router

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/handler"
	"pawmatch/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/api/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", messageHandler.Send)
	messages.GET("/:matchId", messageHandler.ListByMatch)
	messages.PUT("/:id/read", messageHandler.MarkRead)
}

package router

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/handler"
	"pawmatch/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, wsHandler *handler.WebSocketHandler) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupDogRouter(e, authMiddleware)
	SetupMatchRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupWebSocketRouter(e, wsHandler)
}

package router

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/handler"
	"pawmatch/internal/adapter/api/middleware"
)

func SetupMatchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchHandler := handler.GetMatchHandler()

	matches := e.Group("/api/matches")
	matches.Use(authMiddleware.Authenticate)

	matches.POST("", matchHandler.Create)
	matches.GET("", matchHandler.ListMine)
	matches.GET("/:id", matchHandler.GetByID)
	matches.PUT("/:id/status", matchHandler.UpdateStatus)
}

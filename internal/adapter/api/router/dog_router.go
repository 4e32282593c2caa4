package router

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/handler"
	"pawmatch/internal/adapter/api/middleware"
)

func SetupDogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dogHandler := handler.GetDogHandler()

	dogs := e.Group("/api/dogs")
	dogs.Use(authMiddleware.Authenticate)

	dogs.POST("", dogHandler.Create)
	dogs.GET("/mine", dogHandler.ListMine)
	dogs.GET("/nearby", dogHandler.Nearby)
	dogs.GET("/:id", dogHandler.GetByID)
	dogs.PUT("/:id", dogHandler.Update)
	dogs.DELETE("/:id", dogHandler.Delete)
}

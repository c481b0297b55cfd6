package routes

import (
	"stocktrack/internal/core/container"
	"stocktrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAPIRoutes(router *gin.Engine, container *container.Container) {
	container.ItemHandler.RegisterRoutes(router)
	container.AlertHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}

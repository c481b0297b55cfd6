package main

import (
	"context"
	"log"
	"os"

	"stocktrack/cmd"
	"stocktrack/internal/core/container"
	"stocktrack/internal/core/logger"
	"stocktrack/internal/core/routes"
	"stocktrack/internal/database"
	"stocktrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	if len(os.Args) > 1 {
		cmd.Execute(ctx)
		os.Exit(0)
	}
}

func main() {
	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		appLogger.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		appLogger.Fatal("Unable to connect to the database", zap.Error(err))
	}

	appLogger.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db, appLogger)
	defer appContainer.Close()

	router := gin.New()
	router.Use(gin.Logger(), middleware.RecoveryMiddleware(appLogger))

	routes.RegisterAPIRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	appHost := os.Getenv("APP_HOST")
	if appHost == "" {
		appHost = ":3000"
	}

	if err := router.Run(appHost); err != nil {
		appLogger.Fatal("HTTP server failed", zap.Error(err))
	}
}

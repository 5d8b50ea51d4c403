package main

import (
	"context"
	"log"
	"os"

	"assetdesk/cmd"
	"assetdesk/internal/container"
	"assetdesk/internal/database"
	"assetdesk/internal/logger"
	"assetdesk/internal/middleware"
	"assetdesk/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	zapLogger.Info("Connected to the database")

	app := container.NewAppContainer(db, zapLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())

	routes.RegisterPublicRoutes(router, app)
	routes.RegisterProtectedRoutes(router, app)
	routes.RegisterUtilityRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		panic(err)
	}
}

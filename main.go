package main

import (
	"log"

	"quizgame/config"
	"quizgame/handlers"
	"quizgame/models"
	"quizgame/routes"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Score{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	sessionService := services.NewSessionService(redisClient)
	authService := services.NewAuthService(db)
	quizService := services.NewQuizService(db)
	leaderboardService := services.NewLeaderboardService(db)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(authService, sessionService)
	quizHandler := handlers.NewQuizHandler(quizService, leaderboardService)

	// Setup Gin router
	router := gin.Default()

	// Setup routes
	routes.SetupRoutes(router, accountHandler, quizHandler, sessionService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

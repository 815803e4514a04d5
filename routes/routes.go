package routes

import (
	"net/http"

	"quizgame/handlers"
	"quizgame/middleware"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	accountHandler *handlers.AccountHandler,
	quizHandler *handlers.QuizHandler,
	sessionService *services.SessionService,
) {
	// Account routes (public)
	account := router.Group("/account")
	{
		account.GET("/register", accountHandler.ShowRegister)
		account.POST("/register", accountHandler.Register)
		account.GET("/login", accountHandler.ShowLogin)
		account.POST("/login", accountHandler.Login)
		account.GET("/logout", accountHandler.Logout)
	}

	// Quiz routes (session required; anonymous callers are redirected to login)
	quiz := router.Group("/quiz")
	quiz.Use(middleware.SessionRequired(sessionService))
	{
		quiz.GET("", quizHandler.Index)
		quiz.POST("/start", quizHandler.Start)
		quiz.POST("", quizHandler.Submit)
		quiz.POST("/feedback", quizHandler.Feedback)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

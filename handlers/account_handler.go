package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizgame/middleware"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	authService    *services.AuthService
	sessionService *services.SessionService
}

func NewAccountHandler(authService *services.AuthService, sessionService *services.SessionService) *AccountHandler {
	return &AccountHandler{
		authService:    authService,
		sessionService: sessionService,
	}
}

type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AccountHandler) ShowRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": "", "email": ""})
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.authService.Register(req.Username, req.Email, req.Password); err != nil {
		// Any insert failure is reported as a duplicate; the real fault
		// detail stays out of the response.
		if !errors.Is(err, services.ErrEmailTaken) {
			log.Printf("Registration failed for %s: %v", req.Email, err)
		}
		c.JSON(http.StatusConflict, gin.H{"message": "Email already exists."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful!"})
}

func (h *AccountHandler) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": ""})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.sessionService.Create(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		log.Printf("Failed to create session for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(services.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/quiz")
}

func (h *AccountHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.sessionService.Clear(c.Request.Context(), token); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

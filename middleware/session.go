package middleware

import (
	"net/http"

	"quizgame/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie names the cookie carrying the opaque session token.
const SessionCookie = "quiz_session"

// SessionRequired resolves the caller's session and puts the identity on the
// request context under "user_id" and "username". Anyone without a live
// session is redirected to the login page instead of getting an error.
func SessionRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		session, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/account/login")
			c.Abort()
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("username", session.Username)
		c.Next()
	}
}

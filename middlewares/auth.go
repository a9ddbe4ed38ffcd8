package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session"
	userIDKey     = "userID"
)

// TokenParser resolves a session token to a user id.
type TokenParser interface {
	ParseToken(tokenString string) (uint, error)
}

// AuthRequired redirects anonymous requests to /login and stores the user id otherwise.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		userID, err := parser.ParseToken(token)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by AuthRequired, or 0.
func UserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

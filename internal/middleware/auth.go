package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medconnect/medconnect-api/internal/utils"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		claims, err := utils.ValidateSessionToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		// Expose the decoded claims to handlers
		c.Set("user", claims)

		c.Next()
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medconnect/medconnect-api/internal/middleware"
	"github.com/medconnect/medconnect-api/internal/utils"
)

// IssueToken signs whatever claims the client supplies and sets them as an
// http-only session cookie. There is no server-side identity check here; the
// token only proves the holder obtained it from this endpoint.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := utils.GenerateSessionToken(payload, []byte(h.Cfg.JWTSecret), utils.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	h.setSessionCookie(c, token, int(utils.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := gin.Mode() == gin.ReleaseMode
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", secure, true)
}

package middleware

import (
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// EnsureSession gives every caller a session cookie scoping their
// in-memory cart and game state. Guests get one on first contact;
// nothing here requires sign-in.
func EnsureSession(cookieCfg config.CookieConfig, sessionCfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cookie.GetSessionID(c)
		if sessionID == "" {
			sessionID = uuid.NewString()
			cookie.SetSessionCookie(c, cookieCfg, sessionID, sessionCfg.TTL)
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}

	id, ok := sessionID.(string)
	return id, ok
}

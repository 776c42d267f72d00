package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Session ID generation
)

const sessionCookie = "session_id"

// SessionMiddleware attaches a session ID to every request on the public
// pages, issuing a new one via cookie when the client has none yet.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, 86400, "/", "", false, true)
		}
		c.Set("sessionID", sid)
		c.Next()
	}
}

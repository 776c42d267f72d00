package api

import (
	"net/http"

	"mentor_mentee_app/internal/session"

	"github.com/gin-gonic/gin"
)

// loadSession fetches the request's session; on store failure it writes the
// error response and reports false.
func loadSession(c *gin.Context, store *session.Store) (string, *session.Session, bool) {
	sid := c.GetString("sessionID")
	sess, err := store.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return "", nil, false
	}
	return sid, sess, true
}

// saveSession persists the session; on store failure it writes the error
// response and reports false.
func saveSession(c *gin.Context, store *session.Store, sid string, sess *session.Session) bool {
	if err := store.Save(c.Request.Context(), sid, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return false
	}
	return true
}

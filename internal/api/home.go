package api

import (
	"net/http" // HTTP status codes

	"mentor_mentee_app/internal/session" // Session state machine

	"github.com/gin-gonic/gin" // Gin web framework
)

// PageRequest names the page a navigation button points at
type PageRequest struct {
	Page string `json:"page" binding:"required"`
}

// GetSessionHandler exposes the current page and identity to the UI layer.
func GetSessionHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request.Context(), c.GetString("sessionID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// GoToPageHandler performs a navigation-button transition (Home, SignUp,
// Login). Student and Mentor are only reachable through login.
func GoToPageHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		sid := c.GetString("sessionID")
		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		if err := sess.GoTo(req.Page); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := store.Save(c.Request.Context(), sid, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"page": sess.Page})
	}
}

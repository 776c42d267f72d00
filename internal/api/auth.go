package api

import (
	"net/http" // HTTP status codes

	"mentor_mentee_app/internal/domain"     // Importing domain models
	"mentor_mentee_app/internal/repository" // Persistence layer
	"mentor_mentee_app/internal/session"    // Session state machine
	"mentor_mentee_app/internal/utils"      // Hashing and JWT utilities

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// genericAuthFailure is the only message a failed login produces, whatever
// the mismatch was: unknown user, wrong password or wrong role.
const genericAuthFailure = "Incorrect Username/Password or Role"

// SignupRequest carries the create-account form fields
type SignupRequest struct {
	Username string `json:"username" binding:"required"`                        // Username must be provided
	Password string `json:"password" binding:"required"`                        // Password must be provided
	Role     string `json:"role" binding:"required,oneof=Mentor Student"`       // Role selection
}

// LoginRequest carries the login form fields
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Mentor Student"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string `json:"token"` // JWT token
	Page  string `json:"page"`  // Page the session moved to
}

// SignupHandler creates a new account. The session stays on the SignUp page
// afterwards; the user navigates to Login separately.
func SignupHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
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
		// Signup is an action of the SignUp page only
		if sess.Page != session.PageSignUp {
			c.JSON(http.StatusConflict, gin.H{"error": "Not on the SignUp page"})
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{Username: req.Username, Password: hash, Role: req.Role}
		if err := repo.SaveUser(&user); err != nil {
			if err == repository.ErrDuplicateUsername {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Error("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "You have successfully created an account",
			"info":    "Go to Login Menu to login",
		})
	}
}

// LoginHandler authenticates a user against username, password and role.
// All three must match; any single mismatch yields the same generic warning
// and the session stays on the Login page.
func LoginHandler(repo *repository.Repository, store *session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
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
		if sess.Page != session.PageLogin {
			c.JSON(http.StatusConflict, gin.H{"error": "Not on the Login page"})
			return
		}
		user := repo.FindUser(req.Username)
		if user == nil || !utils.CheckPassword(req.Password, user.Password) || user.Role != req.Role {
			c.JSON(http.StatusUnauthorized, gin.H{"error": genericAuthFailure})
			return
		}
		if err := sess.LoginAs(user.Username, user.Role); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// A student's saved test marks pre-fill the in-session form on entry
		if user.Role == domain.RoleStudent {
			if profile := repo.GetStudentProfile(user.Username); profile != nil {
				sess.SetSubjects(profile.Marks())
			}
		}
		if err := store.Save(c.Request.Context(), sid, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		token, err := utils.GenerateJWT(user.Username, user.Role, sid, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).Info("Login")
		c.JSON(http.StatusOK, AuthResponse{Token: token, Page: sess.Page})
	}
}

// LogoutHandler clears the session identity, selection and form state and
// returns it to the Home page.
func LogoutHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("sessionID")
		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		sess.Logout()
		if err := store.Save(c.Request.Context(), sid, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out", "page": sess.Page})
	}
}

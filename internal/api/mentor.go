package api

import (
	"net/http" // HTTP status codes

	"mentor_mentee_app/internal/domain"     // Importing domain models
	"mentor_mentee_app/internal/repository" // Persistence layer
	"mentor_mentee_app/internal/session"    // Session state machine

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SelectStudentRequest names the student a mentor picked from the list
type SelectStudentRequest struct {
	Username string `json:"username" binding:"required"`
}

// FeedbackRequest carries the free-text feedback form
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// studentView is a profile with the test-marks column decoded for display
type studentView struct {
	domain.StudentProfile
	Marks []domain.SubjectMark `json:"marks"`
}

// GetMentorPageHandler renders the mentor page: the full student list,
// re-fetched on every call, and the selected student's full profile when a
// selection exists.
func GetMentorPageHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		profiles := repo.ListStudentProfiles()
		usernames := make([]string, len(profiles))
		for i, p := range profiles {
			usernames[i] = p.Username
		}
		resp := gin.H{
			"students":         usernames,
			"selected_student": sess.SelectedStudent,
		}
		if sess.SelectedStudent != "" {
			if profile := repo.GetStudentProfile(sess.SelectedStudent); profile != nil {
				resp["selected_profile"] = studentView{StudentProfile: *profile, Marks: profile.Marks()}
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SelectStudentHandler records the mentor's selection. It persists in the
// session across renders until logout.
func SelectStudentHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectStudentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if repo.GetStudentProfile(req.Username) == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No details found for this student."})
			return
		}
		sid, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		if err := sess.SelectStudent(req.Username); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if !saveSession(c, store, sid, sess) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"selected_student": sess.SelectedStudent})
	}
}

// SubmitFeedbackHandler appends feedback from the mentor to the currently
// selected student. Feedback rows are never deduplicated.
func SubmitFeedbackHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentor := c.GetString("username")
		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		_, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		if sess.SelectedStudent == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No student selected"})
			return
		}
		fb := domain.Feedback{
			MentorUsername:  mentor,
			StudentUsername: sess.SelectedStudent,
			Feedback:        req.Feedback,
		}
		if err := repo.AppendFeedback(&fb); err != nil {
			logrus.WithFields(logrus.Fields{
				"mentor":  mentor,
				"student": sess.SelectedStudent,
				"error":   err.Error(),
			}).Error("Failed to save feedback")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Feedback Submitted"})
	}
}

// RemoveStudentHandler deletes a student's profile together with all
// feedback addressed to them, atomically. There is no undo.
func RemoveStudentHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if repo.GetStudentProfile(username) == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No details found for this student."})
			return
		}
		if err := repo.DeleteStudentProfile(username); err != nil {
			logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to remove student")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove student"})
			return
		}
		logrus.WithField("username", username).Info("Student removed")
		c.JSON(http.StatusOK, gin.H{"message": "Student " + username + " has been removed."})
	}
}

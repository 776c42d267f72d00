package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"mentor_mentee_app/internal/domain"     // Importing domain models
	"mentor_mentee_app/internal/repository" // Persistence layer
	"mentor_mentee_app/internal/session"    // Session state machine

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// StudentDetailsRequest carries the student details form on submit. The
// subjects list replaces the in-session list wholesale.
type StudentDetailsRequest struct {
	Name           string               `json:"name" binding:"required"`
	RollNo         string               `json:"roll_no" binding:"required"`
	Phone          string               `json:"phone" binding:"omitempty,len=10"` // Exactly 10 characters when given
	Subjects       []domain.SubjectMark `json:"subjects"`
	Certifications string               `json:"certifications"`
	Projects       string               `json:"projects"`
	AcademicIssues string               `json:"academic_issues"`
}

// GetStudentPageHandler renders the student's own page: profile fields for
// the edit form, the in-session subjects list, and feedback addressed to the
// student in storage order.
func GetStudentPageHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		_, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		resp := gin.H{
			"subjects": sess.Subjects,
			"feedback": repo.ListFeedbackForStudent(username),
		}
		if profile := repo.GetStudentProfile(username); profile != nil {
			resp["profile"] = profile
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AddSubjectHandler appends a blank subject/marks row to the form state.
func AddSubjectHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		sess.AddSubject()
		if !saveSession(c, store, sid, sess) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"subjects": sess.Subjects})
	}
}

// RemoveSubjectHandler removes the form row at the given index.
func RemoveSubjectHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
			return
		}
		sid, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		if err := sess.RemoveSubject(idx); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !saveSession(c, store, sid, sess) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"subjects": sess.Subjects})
	}
}

// SubmitDetailsHandler upserts the student's profile from the submitted form
// and makes the submitted subjects list the session's form state.
func SubmitDetailsHandler(repo *repository.Repository, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		var req StudentDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		sid, sess, ok := loadSession(c, store)
		if !ok {
			return
		}
		sess.SetSubjects(req.Subjects)
		profile := domain.StudentProfile{
			Username:       username,
			Name:           req.Name,
			RollNo:         req.RollNo,
			Phone:          req.Phone,
			Certifications: req.Certifications,
			Projects:       req.Projects,
			AcademicIssues: req.AcademicIssues,
		}
		if err := profile.SetMarks(sess.Subjects); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subjects"})
			return
		}
		if err := repo.UpsertStudentProfile(&profile); err != nil {
			logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to save student details")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save details"})
			return
		}
		if !saveSession(c, store, sid, sess) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Details Submitted Successfully"})
	}
}

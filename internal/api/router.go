package api

import (
	"mentor_mentee_app/internal/config"     // Configuration
	"mentor_mentee_app/internal/domain"     // Importing domain models
	"mentor_mentee_app/internal/middleware" // Auth and session middleware
	"mentor_mentee_app/internal/repository" // Persistence layer
	"mentor_mentee_app/internal/session"    // Session state machine

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every page onto a gin engine.
func NewRouter(conn *gorm.DB, repo *repository.Repository, store *session.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Public pages: Home, SignUp, Login. Session travels by cookie.
	public := r.Group("/")
	public.Use(middleware.SessionMiddleware())
	public.GET("/session", GetSessionHandler(store))                         // Current page and identity
	public.POST("/session/page", GoToPageHandler(store))                     // Navigation buttons
	public.POST("/signup", SignupHandler(repo, store))                       // Create account
	public.POST("/login", LoginHandler(repo, store, cfg.JWTSecret))          // Login
	public.GET("/theme/background", BackgroundHandler(cfg.BackgroundImgURL)) // UI background image

	// Student page (JWT protected, Student role only)
	studentGroup := r.Group("/student")
	studentGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(conn, domain.RoleStudent))
	studentGroup.GET("", GetStudentPageHandler(repo, store))             // Details form, subjects and feedback
	studentGroup.POST("", SubmitDetailsHandler(repo, store))             // Submit details
	studentGroup.POST("/subjects", AddSubjectHandler(store))             // Add a blank subject row
	studentGroup.DELETE("/subjects/:index", RemoveSubjectHandler(store)) // Remove a subject row

	// Mentor page (JWT protected, Mentor role only)
	mentorGroup := r.Group("/mentor")
	mentorGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(conn, domain.RoleMentor))
	mentorGroup.GET("", GetMentorPageHandler(repo, store))                // Student list and selection
	mentorGroup.POST("/select", SelectStudentHandler(repo, store))        // Select a student
	mentorGroup.POST("/feedback", SubmitFeedbackHandler(repo, store))     // Submit feedback
	mentorGroup.DELETE("/students/:username", RemoveStudentHandler(repo)) // Remove student (cascades)

	// Logout works for either role
	r.POST("/logout", middleware.JWTAuthMiddleware(cfg.JWTSecret), LogoutHandler(store))

	return r
}

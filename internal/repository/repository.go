package repository

import (
	"errors"
	"strings"

	"mentor_mentee_app/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert support
)

// ErrDuplicateUsername is returned by SaveUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Repository is the persistence layer over the sqlite database file. Reads
// never propagate storage errors to page rendering: they log and degrade to
// empty results. Writes return errors for the handlers to surface.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository over an open database handle.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the users, student_profiles and feedbacks tables.
// Safe to call on every startup; existing tables are left alone.
func (r *Repository) CreateSchema() error {
	return r.db.AutoMigrate(&domain.User{}, &domain.StudentProfile{}, &domain.Feedback{})
}

// SaveUser inserts a new user. Usernames are unique; inserting an existing
// one returns ErrDuplicateUsername.
func (r *Repository) SaveUser(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// FindUser returns the user with the given username, or nil when absent.
func (r *Repository) FindUser(username string) *domain.User {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to load user")
		}
		return nil
	}
	return &user
}

// ListUsers returns all users, empty on storage error.
func (r *Repository) ListUsers() []domain.User {
	users := []domain.User{}
	if err := r.db.Find(&users).Error; err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to list users")
		return []domain.User{}
	}
	return users
}

// UpsertStudentProfile inserts the profile or fully replaces the existing row
// with the same username.
func (r *Repository) UpsertStudentProfile(profile *domain.StudentProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// GetStudentProfile returns the profile for a username, or nil when absent.
func (r *Repository) GetStudentProfile(username string) *domain.StudentProfile {
	var profile domain.StudentProfile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to load student profile")
		}
		return nil
	}
	return &profile
}

// ListStudentProfiles returns every student profile, empty on storage error.
func (r *Repository) ListStudentProfiles() []domain.StudentProfile {
	profiles := []domain.StudentProfile{}
	if err := r.db.Find(&profiles).Error; err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to list student profiles")
		return []domain.StudentProfile{}
	}
	return profiles
}

// AppendFeedback inserts a new feedback row. Feedback is never deduplicated:
// submitting the same text twice stores two rows.
func (r *Repository) AppendFeedback(fb *domain.Feedback) error {
	return r.db.Create(fb).Error
}

// ListFeedbackForStudent returns all feedback addressed to a student in
// storage order, empty on storage error.
func (r *Repository) ListFeedbackForStudent(username string) []domain.Feedback {
	rows := []domain.Feedback{}
	if err := r.db.Where("student_username = ?", username).Find(&rows).Error; err != nil {
		logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to list feedback")
		return []domain.Feedback{}
	}
	return rows
}

// DeleteStudentProfile removes the profile and every feedback row addressed
// to the student in one transaction: either both deletes apply or neither.
func (r *Repository) DeleteStudentProfile(username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).Delete(&domain.StudentProfile{}).Error; err != nil {
			return err // Rollback
		}
		if err := tx.Where("student_username = ?", username).Delete(&domain.Feedback{}).Error; err != nil {
			return err // Rollback
		}
		return nil // Commit
	})
}

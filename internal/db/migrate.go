package db

import (
	"mentor_mentee_app/internal/repository"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the sqlite database file, creating it when missing.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// Migrate ensures the schema exists in the database file. Idempotent.
func Migrate(path string) {
	conn, err := Open(path)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := repository.New(conn).CreateSchema(); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

package main

import (
	"mentor_mentee_app/internal/config" // Custom import path (Config)
	"mentor_mentee_app/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DBPath)
}

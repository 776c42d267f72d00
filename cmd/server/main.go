package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"mentor_mentee_app/internal/api"        // Custom package for API handlers
	"mentor_mentee_app/internal/config"     // Custom package for configuration
	"mentor_mentee_app/internal/db"         // Custom package for database access
	"mentor_mentee_app/internal/repository" // Custom package for persistence
	"mentor_mentee_app/internal/session"    // Custom package for session state

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the sqlite database file
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	repo := repository.New(conn)
	// Schema creation is idempotent; run it on every startup
	if err := repo.CreateSchema(); err != nil {
		logrus.Fatalf("failed to create schema: %v", err)
	}

	// Setup Redis client for the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	store := session.NewStore(redisClient)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := api.NewRouter(conn, repo, store, cfg)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort) // Start the server on port cfg.AppPort
}

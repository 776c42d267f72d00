package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string // Application port
	DBPath           string // Path to the sqlite database file
	JWTSecret        string // JWT secret key
	RedisAddr        string // Redis server address
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	BackgroundImgURL string // Background image URL for the UI theme
	IsProd           bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "mentor_mentee_app.db" // Default database file next to the binary
	}
	return &Config{
		AppPort:          os.Getenv("APP_PORT"),
		DBPath:           dbPath,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          redisDB,
		BackgroundImgURL: os.Getenv("BACKGROUND_IMG_URL"),
		IsProd:           os.Getenv("IS_PROD") == "true",
	}
}

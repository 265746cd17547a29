package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisAddr   string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string

	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
}

// Load reads the .env file if present and falls back to the process
// environment for every key.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		Port:                   getEnv("PORT", "8000"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-this"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "agropetvet"),
		SMTPHost:               os.Getenv("SMTP_HOST"),
		SMTPPort:               os.Getenv("SMTP_PORT"),
		EmailUser:              os.Getenv("EMAIL_USER"),
		EmailPass:              os.Getenv("EMAIL_PASS"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	AdminEmail    string
	AdminPassword string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	// AutocompleteLimit caps every autocomplete category (cities, towns,
	// groups, nurseries).
	AutocompleteLimit int

	// PreviewUnapproved makes the public nursery detail lookup return
	// unapproved nurseries. Off by default: unapproved nurseries are
	// NotFound to the public and only visible through the dashboard
	// preview endpoint.
	PreviewUnapproved bool

	ReviewRateLimit time.Duration
	PresenceTTL     time.Duration
	PresenceSweep   time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "nursery_directory"),

		PreviewUnapproved: getEnv("PREVIEW_UNAPPROVED", "false") == "true",
	}

	var err error
	cfg.AutocompleteLimit, err = strconv.Atoi(getEnv("AUTOCOMPLETE_LIMIT", "10"))
	if err != nil || cfg.AutocompleteLimit <= 0 {
		return nil, fmt.Errorf("invalid AUTOCOMPLETE_LIMIT: %q", os.Getenv("AUTOCOMPLETE_LIMIT"))
	}

	cfg.ReviewRateLimit, err = time.ParseDuration(getEnv("REVIEW_RATE_LIMIT", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REVIEW_RATE_LIMIT: %w", err)
	}

	cfg.PresenceTTL, err = time.ParseDuration(getEnv("PRESENCE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_TTL: %w", err)
	}

	cfg.PresenceSweep, err = time.ParseDuration(getEnv("PRESENCE_SWEEP", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_SWEEP: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

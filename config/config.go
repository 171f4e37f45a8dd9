package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Admin      AdminConfig
	Upload     UploadConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// AdminConfig seeds the first back-office account when user_profiles is empty.
type AdminConfig struct {
	Email    string
	Password string
}

type UploadConfig struct {
	MaxImageBytes int64
	Folder        string
}

// RateLimitConfig caps requests per client IP within a time window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8088"),
			Env:          envOr("ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             envOr("DB_DSN", "root:@tcp(localhost:3306)/zhanyixia?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    envOrInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    envOrInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  envOr("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: envOr("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "zhanyixia",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: envOr("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    envOr("CLOUDINARY_API_KEY", ""),
			APISecret: envOr("CLOUDINARY_API_SECRET", ""),
		},
		Admin: AdminConfig{
			Email:    envOr("ADMIN_EMAIL", "admin@zhanyixia.local"),
			Password: envOr("ADMIN_PASSWORD", "admin12345"),
		},
		Upload: UploadConfig{
			MaxImageBytes: 5 * 1024 * 1024,
			Folder:        envOr("UPLOAD_FOLDER", "Zhanyixia"),
		},
		RateLimit: RateLimitConfig{
			Requests: envOrInt("RATE_LIMIT_REQUESTS", 100),
			Window:   time.Duration(envOrInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

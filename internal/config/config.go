package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config chứa toàn bộ application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Firebase FirebaseConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	Admin    AdminConfig
	Jobs     JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string // path to the service account JSON
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type AdminConfig struct {
	// Emails allowed through the admin gate, comma separated in env.
	Emails []string
}

type JobConfig struct {
	// Cron spec for the periodic cache-mirror refresh.
	CacheMirrorSchedule string
	Concurrency         int
}

// Load đọc config từ environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "B2B Showcase API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", "b2bshowcase-199a8"),
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "config/firebase-service-account.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "b2b-showcase"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Admin: AdminConfig{
			Emails: splitList(getEnv("ADMIN_EMAILS", "")),
		},
		Jobs: JobConfig{
			CacheMirrorSchedule: getEnv("JOB_CACHE_MIRROR_CRON", "0 * * * *"),
			Concurrency:         getEnvInt("WORKER_CONCURRENCY", 5),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không.
func (c *Config) Validate() error {
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID must be set")
	}

	// Production environment phải có admin allow-list
	if c.App.Environment == "production" && len(c.Admin.Emails) == 0 {
		return fmt.Errorf("ADMIN_EMAILS must be set in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

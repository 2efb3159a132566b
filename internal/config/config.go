package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	BaseURL     string

	// DatabaseURL holds the site content database. An empty value falls
	// back to a local sqlite file, mirroring local development.
	DatabaseURL string

	// RatingsBackend selects the rating store adapter: "memory", "sqlite"
	// or "postgres". Empty means auto-detect from RatingsDatabaseURL /
	// DatabaseURL.
	RatingsBackend     string
	RatingsDatabaseURL string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	OwnerEmail   string

	RateLimitRPS int
	RedisURL     string

	StorageRegion    string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string
	StorageEndpoint  string
	StoragePublicURL string

	AllowedOrigins []string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	rateLimitRPS, _ := strconv.Atoi(getEnv("RATE_LIMIT_RPS", "20"))

	return &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "local.db"),
		RatingsBackend:     getEnv("RATINGS_BACKEND", ""),
		RatingsDatabaseURL: getEnv("RATINGS_DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
		AdminUsername:      getEnv("ADMIN_USERNAME", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           smtpPort,
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		FromEmail:          getEnv("FROM_EMAIL", "noreply@localhost"),
		OwnerEmail:         getEnv("OWNER_EMAIL", ""),
		RateLimitRPS:       rateLimitRPS,
		RedisURL:           getEnv("REDIS_URL", ""),
		StorageRegion:      getEnv("STORAGE_REGION", "auto"),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		StorageAccessKey:   getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:   getEnv("STORAGE_SECRET_KEY", ""),
		StorageEndpoint:    getEnv("STORAGE_ENDPOINT", ""),
		StoragePublicURL:   getEnv("STORAGE_PUBLIC_URL", ""),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

// RatingsBackendName resolves the effective rating store adapter. The
// explicit setting wins; otherwise the connection strings decide. With no
// database configured at all, ratings fall back to the volatile in-memory
// store.
func (c *Config) RatingsBackendName() string {
	if c.RatingsBackend != "" {
		return c.RatingsBackend
	}
	url := c.RatingsDatabaseURL
	if url == "" {
		url = c.DatabaseURL
	}
	switch {
	case url == "":
		return "memory"
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres"
	default:
		return "sqlite"
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	DBPath         string
	DatasetURL     string        // major projects CSV asset
	FetchTimeout   time.Duration // upstream fetch timeout, no retry
	AdminJWTSecret string
	RateLimit      int           // requests per window per IP
	RateWindow     time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", ":8080"),
		DBPath:         getEnv("DB_PATH", "./data/factbook/projects.db"),
		DatasetURL:     getEnv("DATASET_URL", "https://energy-factbook.example/data/major_projects_map.csv"),
		FetchTimeout:   getDuration("FETCH_TIMEOUT", 60*time.Second),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", "change-me-in-production"),
		RateLimit:      getInt("RATE_LIMIT", 120),
		RateWindow:     getDuration("RATE_WINDOW", time.Minute),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	// Server
	Port string
	Host string

	// Database. DatabaseURL selects Postgres; DBPath is the SQLite
	// fallback for local development.
	DatabaseURL string
	DBPath      string

	// School branding shown by the presentation layer.
	SchoolName string

	// Grading
	DefaultMaxScore int
}

// Load reads the configuration from environment variables, with a .env file
// loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		Host:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBPath:      getEnv("DB_PATH", "data/sis.db"),
		SchoolName:  getEnv("SCHOOL_NAME", "SmartSIS"),
	}

	if maxScore, err := strconv.Atoi(getEnv("DEFAULT_MAX_SCORE", "100")); err == nil {
		config.DefaultMaxScore = maxScore
	} else {
		config.DefaultMaxScore = 100
	}

	return config, nil
}

// getEnv returns the environment variable or the default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

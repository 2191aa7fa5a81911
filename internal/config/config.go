package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBUrl        string
	ModelPath    string
	WorkoutsPath string
	CORSOrigins  string
	AppEnv       string
	MaxSessions  int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBUrl:        getEnv("DB_URL", ""),
		ModelPath:    getEnv("MODEL_PATH", "models/plan_model.json"),
		WorkoutsPath: getEnv("WORKOUTS_PATH", "data/workouts.json"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
		MaxSessions:  getEnvInt("MAX_SESSIONS", 0),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	Port string

	// StorageBackend selects the repository implementation: "memory" or
	// "postgres".
	StorageBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	OpenAIKey string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "minutely"),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

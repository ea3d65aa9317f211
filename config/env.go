package config

import (
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the server needs at startup. It is built once
// in main and injected, so there is no process-wide config singleton.
type AppConfig struct {
	Port         string
	DatabasePath string
	Debug        bool
}

// LoadENV will load the .env file if the GO_ENV environment variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}
	return nil
}

// New builds an AppConfig from the environment.
func New() *AppConfig {
	return &AppConfig{
		Port:         GetEnv("PORT", "5000"),
		DatabasePath: GetEnv("DATABASE_PATH", "todos.db"),
		Debug:        os.Getenv("DEBUG") == "true",
	}
}

// GetEnv func to get env values with a fallback
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

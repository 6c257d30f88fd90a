package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	FirebaseCredentials string // path to the service account JSON; empty uses ADC
	LogLevel            string
	LogFormat           string
	UniquePhoneNumbers  bool // enforce phone-number-per-customer uniqueness
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	cfg := &Config{
		Env:                 getEnvWithDefault("ENV", "development"),
		Port:                getEnvWithDefault("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvWithDefault("LOG_FORMAT", "json"),
		UniquePhoneNumbers:  getEnvWithDefault("UNIQUE_PHONE_NUMBERS", "true") == "true",
	}

	if cfg.DatabaseURL == "" {
		log.Println("WARNING: DATABASE_URL is not set")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"

	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	APIBaseURL     string
	AppName        string
	AppDescription string
	Port           string
	StoragePath    string
	SessionSecret  string
	Env            string
}

// App is the loaded application configuration
var App *Config

// LoadConfig loads configuration from environment variables. A missing .env
// file is fine; every key has a hardcoded fallback.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api/"+utils.APIVersion),
		AppName:        getEnv("APP_NAME", utils.AppName),
		AppDescription: getEnv("APP_DESCRIPTION", "Online shopping in Nepal"),
		Port:           getEnv("PORT", utils.DefaultPort),
		StoragePath:    getEnv("STORAGE_PATH", utils.DefaultStoragePath),
		SessionSecret:  getEnv("SESSION_SECRET", "epsalae-session-secret"),
		Env:            getEnv("ENV", "development"),
	}

	App = cfg
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

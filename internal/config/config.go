package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBPath     string
	UploadsDir string
	SecretKey  string
}

// Load reads a best-effort .env file, then resolves settings from the
// environment with development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:       getEnv("PORT", "3001"),
		DBPath:     getEnv("DB_PATH", filepath.Join("data", "pregnancy.db")),
		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		SecretKey:  getEnv("SECRET_KEY", "change_me_in_production"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

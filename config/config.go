package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	CatalogCSV   string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment.
func Load() {
	AppConfig = Config{
		Port:         getEnv("PORT", "5000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		CatalogCSV:   getEnv("CATALOG_CSV", "data/articles.csv"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

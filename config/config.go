package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	LOG_LEVEL  string
	LOG_PRETTY bool

	OPENROUTER_API_KEY  string
	OPENROUTER_BASE_URL string
	OPENROUTER_MODEL    string
	OPENROUTER_PROXY    string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	SMTP_FROM     string
	SMTP_PASSWORD string
	SMTP_HOST     string
	SMTP_PORT     string

	APP_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_PRETTY = getEnv("LOG_PRETTY", "") == "true"

	// A missing API key is reported by the generation client at call time,
	// so the app can still boot for local work without one.
	OPENROUTER_API_KEY = getEnv("OPENROUTER_API_KEY", "")
	OPENROUTER_BASE_URL = getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	OPENROUTER_MODEL = getEnv("OPENROUTER_MODEL", "openai/gpt-4o")
	OPENROUTER_PROXY = getEnv("HTTPS_PROXY", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")

	APP_BASE_URL = getEnv("APP_BASE_URL", "http://localhost:8080")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

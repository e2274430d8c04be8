package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // "sqlite" or "postgres"
	DBName    string
	JWTKey    string
	SaltRound int

	GeminiApiKey  string
	GeminiApiUrl  string
	GeminiModel   string
	GeminiTimeout int // seconds

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBName:    getEnv("DB_NAME", "eduflow.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		GeminiApiKey:  getEnv("API_KEY", ""),
		GeminiApiUrl:  getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiTimeout: getEnvInt("GEMINI_TIMEOUT_SECONDS", 10),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: API_KEY is not set. AI features will serve fallback content.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

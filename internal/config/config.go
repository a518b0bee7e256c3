package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted in LLM_PROVIDER
const (
	ProviderMock     = "mock"
	ProviderDeepseek = "deepseek"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging configuration
	LogFormat string
	LogLevel  string

	// CORS configuration
	CORSAllowOrigins []string

	// Database configuration
	PostgresURL string

	// LLM provider configuration
	LLMProvider      string
	DeepseekAPIKey   string
	DeepseekEndpoint string
	DeepseekModel    string
	LLMTimeout       time.Duration

	// Geocoding configuration
	AmapWebServiceKey string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 60)) * time.Second,

		// Logging configuration
		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),

		// CORS configuration
		CORSAllowOrigins: getEnvStringSlice("CORS_ALLOW_ORIGINS", []string{"*"}),

		// Database configuration
		PostgresURL: os.Getenv("POSTGRES_DB_URL"),

		// LLM provider configuration
		LLMProvider:      getEnvString("LLM_PROVIDER", ProviderMock),
		DeepseekAPIKey:   os.Getenv("DEEPSEEK_API_KEY"),
		DeepseekEndpoint: getEnvString("DEEPSEEK_API_ENDPOINT", "https://api.deepseek.com/v1"),
		DeepseekModel:    getEnvString("DEEPSEEK_MODEL", "deepseek-chat"),
		LLMTimeout:       time.Duration(getEnvInt("LLM_TIMEOUT", 60)) * time.Second,

		// Geocoding configuration
		AmapWebServiceKey: os.Getenv("AMAP_WEB_SERVICE_KEY"),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.LLMProvider == ProviderDeepseek && config.DeepseekAPIKey == "" {
		log.Println("Warning: LLM_PROVIDER is deepseek but no DEEPSEEK_API_KEY provided. Plan generation will fail.")
	}

	if config.PostgresURL == "" {
		log.Println("Warning: No POSTGRES_DB_URL provided. Itinerary and expense persistence will be unavailable.")
	}

	if config.AmapWebServiceKey == "" {
		log.Println("Warning: No AMAP_WEB_SERVICE_KEY provided. Geocoding requests will be rejected.")
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

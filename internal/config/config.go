package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Quote source
	QuoteAPIURL   string
	QuoteAPIKey   string
	QuoteCacheTTL time.Duration
	QuoteTimeout  time.Duration

	// Portfolio summary
	TopMovers int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "assetfolio"),
		DBPassword: getEnv("DB_PASSWORD", "assetfolio"),
		DBName:     getEnv("DB_NAME", "assetfolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Quote source
		QuoteAPIURL: getEnv("QUOTE_API_URL", "https://finnhub.io/api/v1"),
		QuoteAPIKey: getEnv("QUOTE_API_KEY", ""),
	}

	config.QuoteCacheTTL = getDuration("QUOTE_CACHE_TTL", 60*time.Second)
	config.QuoteTimeout = getDuration("QUOTE_TIMEOUT", 5*time.Second)
	config.TopMovers = getInt("TOP_MOVERS", 5)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration retrieves a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// getInt retrieves an integer environment variable or returns a default value
func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

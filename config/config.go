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
	JWTKey    string
	SaltRound int

	DBDriver   string // postgres, mysql or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	StripeAPIURL    string
	StripeSecretKey string

	SendGridAPIKey string
	EmailSender    string
	EmailFromName  string

	FrontendURL string

	BookingDurationMinutes int
	DefaultCurrency        string
}

// Load initializes configuration from environment variables or defaults.
// The returned struct is handed to components at construction; nothing
// reads configuration through package state.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "techstep"),

		StripeAPIURL:    getEnv("STRIPE_API_URL", "https://api.stripe.com/v1"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@techstep.io"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "TechStep"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		BookingDurationMinutes: getEnvInt("BOOKING_DURATION_MINUTES", 60),
		DefaultCurrency:        getEnv("DEFAULT_CURRENCY", "usd"),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set. Payment endpoints will fail.")
	}

	return cfg
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

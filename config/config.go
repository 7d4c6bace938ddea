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

	// ReferralBonus is credited to the referrer, in points.
	ReferralBonus int64

	PaymentURL    string // T-Bank payment page for card top-ups
	SBPBaseURL    string // SBP QR deep-link base
	RecipientCard string

	WebhookSinkURL string // optional event sink for payment/withdrawal events
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
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		ReferralBonus: getEnvInt64("REFERRAL_BONUS", 50),

		PaymentURL:    getEnv("PAYMENT_URL", "https://tbank.ru/cf/2bwxNMfSFLa"),
		SBPBaseURL:    getEnv("SBP_BASE_URL", "https://qr.nspk.ru/AD10003H7CH2FNNHH0QGFMVHQ26LO3I5"),
		RecipientCard: getEnv("RECIPIENT_CARD", "2200700628083809"),

		WebhookSinkURL: getEnv("WEBHOOK_SINK_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
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

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to int64: %v", key, err)
		return defaultValue
	}
	return intValue
}

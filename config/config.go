package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	SMTPHost      string
	SMTPPort      string
	EmailSender   string
	EmailPassword string // SMTP App Password

	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string

	JWTKey            string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash of the admin password

	UploadDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port: getEnv("PORT", "8987"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "akilam_website"),
		DBPort:     getEnv("DB_PORT", "5432"),

		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		EmailSender:   getEnv("EMAIL_USER", ""),
		EmailPassword: getEnv("EMAIL_PASS", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		RazorpayBaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),

		JWTKey:            getEnv("JWT_SECRET_KEY", "defaultSecret"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@akilamtechnology.com"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RazorpayKeySecret == "" {
		log.Println("Warning: RAZORPAY_KEY_SECRET is not set. Payment verification will fail.")
	}
	if AppConfig.EmailSender == "" {
		log.Println("Warning: EMAIL_USER is not set. Confirmation emails will not be delivered.")
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

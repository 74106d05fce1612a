package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
	// Operator addresses notified about every new lead (comma-separated)
	NotifyRecipients string

	CaptchaSecret    string
	CaptchaVerifyURL string

	TokenSecret   string
	TokenIssuer   string
	TokenAudience string

	// Kafka settings (comma-separated brokers)
	KafkaBrokers         string
	KafkaLeadEventsTopic string
}

var AppConfig Config

func LoadConfig() {
	// Try loading .env from different locations
	envLocations := []string{
		".env",              // project root
		"config/.env",       // config subdirectory
		"../config/.env",    // one level up
		"../../config/.env", // two levels up
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvWithDefault("DB_PORT", "5432"),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "postgres"),

		SMTPHost:         getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		NotifyRecipients: os.Getenv("NOTIFY_RECIPIENTS"),

		CaptchaSecret:    os.Getenv("CAPTCHA_SECRET"),
		CaptchaVerifyURL: getEnvWithDefault("CAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),

		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		TokenIssuer:   getEnvWithDefault("TOKEN_ISSUER", "lead-intake"),
		TokenAudience: getEnvWithDefault("TOKEN_AUDIENCE", "lead-intake"),

		KafkaBrokers:         getEnvWithDefault("KAFKA_BROKERS", "127.0.0.1:9092"),
		KafkaLeadEventsTopic: getEnvWithDefault("KAFKA_LEAD_EVENTS_TOPIC", "leads.created"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDBConnString() string {
	return "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=disable"
}

// NotifyList splits NotifyRecipients into individual addresses.
func NotifyList() []string {
	var list []string
	for _, addr := range strings.Split(AppConfig.NotifyRecipients, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			list = append(list, addr)
		}
	}
	return list
}

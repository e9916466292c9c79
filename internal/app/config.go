package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr    string
	KafkaBroker  string
	KafkaGroupID string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string
}

// LoadConfig reads the environment, after loading .env when present. Missing
// keys fall back to local-development defaults.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port: getenv("APP_PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "chms"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:  getenv("KAFKA_BROKER", "localhost:9092"),
		KafkaGroupID: getenv("KAFKA_GROUP_ID", "chms-audit"),

		JWTSecret: getenv("JWT_SECRET", "dev-only-secret"),
		TokenTTL:  getenvDuration("TOKEN_TTL", 24*time.Hour),

		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

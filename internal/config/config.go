package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	MongoURI        string
	DBName          string
	TokenTTLMinutes int
	Environment     string
}

// LoadConfig loads configuration from environment variables.
// MONGO_URI has no fallback: without a store connection string the
// process cannot do anything useful, so its absence is fatal.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	mongoURI, ok := os.LookupEnv("MONGO_URI")
	if !ok || mongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}

	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "30"))
	if err != nil || ttl <= 0 {
		ttl = 30
	}

	return &Config{
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		MongoURI:        mongoURI,
		DBName:          getEnv("DB_NAME", "pilgrimage_db"),
		TokenTTLMinutes: ttl,
		Environment:     getEnv("ENVIRONMENT", "development"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

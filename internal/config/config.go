package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs, loaded once at startup and
// handed to constructors. Nothing reads the environment after Load returns.
type Config struct {
	Port          string
	GinMode       string
	FrontendURL   string
	MongoURI      string
	MongoDatabase string

	RabbitMQURI      string
	RabbitMQExchange string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	JWTSecret string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "finlit"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "finlit.events"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:        os.Getenv("LLM_API_KEY"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "llama-3-3-70b-instruct"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

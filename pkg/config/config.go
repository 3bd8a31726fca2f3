package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Redis   RedisConfig
	Railway RailwayConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ShutdownTimeout int
}

// OpenAIConfig holds OpenAI provider configuration
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RedisConfig holds Redis configuration for the event bus
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	EventChannel string
}

// RailwayConfig holds deployment provider configuration used by the installer
type RailwayConfig struct {
	Token       string
	ProjectID   string
	ServiceName string
	SourceRepo  string
	Branch      string
	Environment string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8002"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnvFirst("OPENAI_API_KEY", "BUDAI_OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4"),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			EventChannel: getEnv("REDIS_EVENT_CHANNEL", "budai.events"),
		},
		Railway: RailwayConfig{
			Token:       getEnv("RAILWAY_TOKEN", ""),
			ProjectID:   getEnv("RAILWAY_PROJECT_ID", ""),
			ServiceName: getEnv("RAILWAY_SERVICE_NAME", "budai-agent-summarizer"),
			SourceRepo:  getEnv("GITHUB_REPO", ""),
			Branch:      getEnv("GITHUB_BRANCH", "main"),
			Environment: getEnv("RAILWAY_ENVIRONMENT", "production"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration.
// A missing OpenAI API key is not an error here: the service starts in a
// not-ready state and rejects summarize requests with 503 until configured.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// ShutdownDuration returns the graceful shutdown timeout as a duration
func (c *Config) ShutdownDuration() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFirst returns the first non-empty value among the given keys
func getEnvFirst(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

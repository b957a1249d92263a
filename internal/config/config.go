package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Table       TableConfig
	CORS        CORSConfig
	AWS         AWSConfig
}

// TableConfig holds the DynamoDB table configuration
type TableConfig struct {
	Name string
}

// CORSConfig holds the CORS response header configuration
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
	MaxAgeSecs   int
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region string
	// EndpointURL overrides the DynamoDB endpoint, e.g. for DynamoDB Local.
	EndpointURL string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TABLE_NAME", "Items")
	viper.SetDefault("CORS_ALLOW_ORIGIN", "*")
	viper.SetDefault("CORS_ALLOW_METHODS", "GET,POST,PUT,DELETE,OPTIONS")
	viper.SetDefault("CORS_ALLOW_HEADERS", "Content-Type,Authorization")
	viper.SetDefault("CORS_MAX_AGE_SECONDS", 86400)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Table: TableConfig{
			Name: viper.GetString("TABLE_NAME"),
		},
		CORS: CORSConfig{
			AllowOrigin:  viper.GetString("CORS_ALLOW_ORIGIN"),
			AllowMethods: viper.GetString("CORS_ALLOW_METHODS"),
			AllowHeaders: viper.GetString("CORS_ALLOW_HEADERS"),
			MaxAgeSecs:   viper.GetInt("CORS_MAX_AGE_SECONDS"),
		},
		AWS: AWSConfig{
			Region:      viper.GetString("AWS_REGION"),
			EndpointURL: viper.GetString("AWS_ENDPOINT_URL"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	AWS    AWSConfig
	HTTP   HTTPConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    string
	GinMode string // "debug", "release", or "test"
}

// StoreConfig selects the merchant profile backend.
type StoreConfig struct {
	Backend        string // "dynamodb", "bolt" or "postgres"
	MerchantsTable string
	BoltPath       string
	DSN            string
}

// AWSConfig points the DynamoDB client at a region or a local endpoint.
type AWSConfig struct {
	Region   string
	Endpoint string // e.g. http://dynamodb:8000; empty means AWS
}

// HTTPConfig configures the outbound processor client.
type HTTPConfig struct {
	Timeout time.Duration
}

const (
	StoreDynamoDB = "dynamodb"
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
)

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Store: StoreConfig{
			Backend:        getEnv("MERCHANT_STORE", StoreDynamoDB),
			MerchantsTable: getEnv("MERCHANTS_TABLE", "merchants"),
			BoltPath:       getEnv("BOLT_PATH", "merchants.db"),
			DSN:            getEnv("DB_DSN", ""),
		},
		AWS: AWSConfig{
			Region:   getEnv("AWS_REGION", "us-east-1"),
			Endpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		},
		HTTP: HTTPConfig{
			Timeout: time.Duration(getEnvInt("GATEWAY_HTTP_TIMEOUT", 60)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

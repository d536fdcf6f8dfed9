package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the loanshield service.
type Config struct {
	GRPCPort string
	HTTPPort string

	RegistryFile string
	ReportsFile  string
	UsersFile    string

	PlayStoreBaseURL string
	PlayStoreStub    bool
	ReviewLocale     string
	ReviewRegion     string
	ReviewMaxCount   int

	KafkaBroker string
	JWTSecret   string
	JWTIssuer   string
	Environment string
	LogLevel    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GRPCPort:         getEnv("GRPC_PORT", "8094"),
		HTTPPort:         getEnv("HTTP_PORT", "9094"),
		RegistryFile:     getEnv("REGISTRY_FILE", "data/registered_apps.csv"),
		ReportsFile:      getEnv("REPORTS_FILE", "data/reported_apps.csv"),
		UsersFile:        getEnv("USERS_FILE", "data/users.csv"),
		PlayStoreBaseURL: getEnv("PLAYSTORE_BASE_URL", "http://localhost:8191"),
		PlayStoreStub:    getEnvBool("PLAYSTORE_STUB", false),
		ReviewLocale:     getEnv("REVIEW_LOCALE", "en"),
		ReviewRegion:     getEnv("REVIEW_REGION", "in"),
		ReviewMaxCount:   getEnvInt("REVIEW_MAX_COUNT", 150),
		KafkaBroker:      getEnv("KAFKA_BROKER", "localhost:9092"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTIssuer:        getEnv("JWT_ISSUER", "loanshield"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

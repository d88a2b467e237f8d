// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pnr-parser-service/pkg/pnr"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	MaxBodyBytes       int64
	CORSAllowedOrigins []string

	// Parser
	SegmentStrategy  string
	MetricsNamespace string

	// MongoDB audit store, disabled when MongoURI is empty
	MongoURI        string
	MongoDB         string
	MongoUser       string
	MongoPassword   string
	AuditCollection string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:               getEnv("PORT", "8080"),
		ReadTimeout:        time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:       time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		ShutdownTimeout:    time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		MaxBodyBytes:       int64(getEnvAsInt("MAX_BODY_BYTES", 64*1024)),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		SegmentStrategy:  getEnv("PNR_SEGMENT_STRATEGY", pnr.DefaultStrategy),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "pnr_parser"),

		MongoURI:        getEnv("MONGODB_DSN", ""),
		MongoDB:         getEnv("MONGO_DB", "pnr_parser"),
		MongoUser:       getEnv("MONGO_USER", ""),
		MongoPassword:   getEnv("MONGO_PASSWORD", ""),
		AuditCollection: getEnv("AUDIT_COLLECTION", "parse_audits"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := pnr.StrategyByName(c.SegmentStrategy); err != nil {
		return fmt.Errorf("PNR_SEGMENT_STRATEGY: %w", err)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	return nil
}

// AuditEnabled reports whether parse audits should be written to MongoDB
func (c *Config) AuditEnabled() bool {
	return c.MongoURI != ""
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

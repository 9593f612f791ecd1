package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the gateway. It is loaded once at
// process start and passed by value into the dispatcher; handling logic
// never reads the environment.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	Maintenance MaintenanceConfig
	Storage     StorageConfig
	Special     SpecialRouteConfig
}

// MaintenanceConfig controls the maintenance branch
type MaintenanceConfig struct {
	Enabled    bool
	RetryAfter int `validate:"min=0"`
}

// StorageConfig holds maintenance page storage configuration
type StorageConfig struct {
	Type      string `validate:"oneof=s3 local mock"`
	Bucket    string `validate:"required_if=Type s3"`
	Key       string `validate:"required"`
	Region    string
	LocalPath string
	Timeout   time.Duration `validate:"gt=0"`
}

// SpecialRouteConfig holds special URL delegation configuration. An empty
// PathPrefix or FunctionARN disables delegation.
type SpecialRouteConfig struct {
	PathPrefix  string
	FunctionARN string
	Timeout     time.Duration `validate:"gt=0"`
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAINTENANCE_MODE", "true")
	viper.SetDefault("RETRY_AFTER_SECONDS", 3600)
	viper.SetDefault("STORAGE_TYPE", "s3")
	viper.SetDefault("S3_BUCKET", "maintenance-pages")
	viper.SetDefault("S3_KEY", "maintenance.html")
	viper.SetDefault("STORAGE_LOCAL_PATH", "./data/pages")
	viper.SetDefault("STORAGE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("SPECIAL_URL_PATH", "")
	viper.SetDefault("SPECIAL_LAMBDA_ARN", "")
	viper.SetDefault("INVOKE_TIMEOUT_SECONDS", 10)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Maintenance: MaintenanceConfig{
			Enabled:    viper.GetBool("MAINTENANCE_MODE"),
			RetryAfter: viper.GetInt("RETRY_AFTER_SECONDS"),
		},
		Storage: StorageConfig{
			Type:      viper.GetString("STORAGE_TYPE"),
			Bucket:    viper.GetString("S3_BUCKET"),
			Key:       viper.GetString("S3_KEY"),
			Region:    viper.GetString("AWS_REGION"),
			LocalPath: viper.GetString("STORAGE_LOCAL_PATH"),
			Timeout:   time.Duration(viper.GetInt("STORAGE_TIMEOUT_SECONDS")) * time.Second,
		},
		Special: SpecialRouteConfig{
			PathPrefix:  viper.GetString("SPECIAL_URL_PATH"),
			FunctionARN: viper.GetString("SPECIAL_LAMBDA_ARN"),
			Timeout:     time.Duration(viper.GetInt("INVOKE_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks the loaded configuration for broken values
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// SpecialRoutingEnabled reports whether special URL delegation is active.
// Both the prefix and the function reference must be configured; a prefix
// without a target is treated as disabled.
func (c *Config) SpecialRoutingEnabled() bool {
	return c.Special.PathPrefix != "" && c.Special.FunctionARN != ""
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

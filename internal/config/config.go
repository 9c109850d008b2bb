package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	S3       S3Config
	Accounts AccountsConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds the settings for the reservation and payment store.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	ConnectAttempts int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// S3Config locates account files in an S3 bucket.
type S3Config struct {
	Enabled  bool
	Bucket   string
	Region   string
	Prefix   string // e.g. "accounts/"
	Endpoint string // S3-compatible endpoint; empty means AWS
}

// AccountsConfig controls the payment gateway's account directory.
// When disabled, payments are accepted for any positive account ID.
type AccountsConfig struct {
	Enabled   bool
	FilePaths []string
}

var defaultAccountFiles = []string{
	"data/accounts/accounts1.gz",
	"data/accounts/accounts2.gz",
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "cinematickets"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 3),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		S3: S3Config{
			Enabled:  getEnvAsBool("S3_ENABLED", false),
			Bucket:   getEnv("S3_BUCKET", ""),
			Region:   getEnv("S3_REGION", "us-east-1"),
			Prefix:   getEnv("S3_PREFIX", "accounts/"),
			Endpoint: getEnv("S3_ENDPOINT", ""),
		},
		Accounts: AccountsConfig{
			Enabled:   getEnvAsBool("ACCOUNTS_ENABLED", false),
			FilePaths: getEnvAsSlice("ACCOUNT_FILES", defaultAccountFiles),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return err
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if err := c.S3.validate(); err != nil {
		return err
	}

	if c.Accounts.Enabled && len(c.Accounts.FilePaths) == 0 {
		return fmt.Errorf("at least one account file is required when the account directory is enabled")
	}

	return nil
}

func (c *DatabaseConfig) validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("database host is required")
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("invalid database port: %d", c.Port)
	case c.User == "":
		return fmt.Errorf("database user is required")
	case c.Database == "":
		return fmt.Errorf("database name is required")
	case c.MaxConnections < 1:
		return fmt.Errorf("database max connections must be at least 1")
	case c.MinConnections < 1:
		return fmt.Errorf("database min connections must be at least 1")
	case c.MinConnections > c.MaxConnections:
		return fmt.Errorf("database min connections cannot exceed max connections")
	case c.ConnectAttempts < 1:
		return fmt.Errorf("database connect attempts must be at least 1")
	}
	return nil
}

func (c *S3Config) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Bucket == "" {
		return fmt.Errorf("S3 bucket is required when S3 is enabled")
	}
	if c.Region == "" {
		return fmt.Errorf("S3 region is required when S3 is enabled")
	}
	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable or returns a default value.
// Empty elements are dropped.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

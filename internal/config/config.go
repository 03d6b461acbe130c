package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credential sources
const (
	CredentialSourceEnv      = "env"
	CredentialSourceDatabase = "database"
)

// MaxPageSize is the largest page the GitHub list endpoints accept
const MaxPageSize = 100

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	GitHub     GitHubConfig
	Credential CredentialConfig
	Navigation NavigationConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	MaxConns int
	MinConns int
}

// GitHubConfig holds GitHub API configuration
type GitHubConfig struct {
	APIURL         string
	WebHost        string
	PageSize       int
	TimeoutSeconds int
}

// CredentialConfig selects where the GitHub token is read from
type CredentialConfig struct {
	Source        string
	Token         string
	EncryptionKey string
	JWTSecret     string
}

// NavigationConfig holds page-navigation trigger settings
type NavigationConfig struct {
	SettleDelayMs int
}

// LogConfig holds logger settings
type LogConfig struct {
	Env   string
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		GitHub: GitHubConfig{
			APIURL:         strings.TrimRight(getEnv("GITHUB_API_URL", "https://api.github.com"), "/"),
			WebHost:        getEnv("GITHUB_WEB_HOST", "github.com"),
			PageSize:       getEnvAsInt("GITHUB_PAGE_SIZE", MaxPageSize),
			TimeoutSeconds: getEnvAsInt("GITHUB_TIMEOUT_SECONDS", 30),
		},
		Credential: CredentialConfig{
			Source:        strings.ToLower(getEnv("CREDENTIAL_SOURCE", CredentialSourceEnv)),
			Token:         getEnv("GITHUB_TOKEN", ""),
			EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
			JWTSecret:     getEnv("SETTINGS_JWT_SECRET", ""),
		},
		Navigation: NavigationConfig{
			SettleDelayMs: getEnvAsInt("NAV_SETTLE_DELAY_MS", 300),
		},
		Log: LogConfig{
			Env:   getEnv("LOG_ENV", "dev"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHub.PageSize < 1 || c.GitHub.PageSize > MaxPageSize {
		return fmt.Errorf("GITHUB_PAGE_SIZE must be between 1 and %d", MaxPageSize)
	}
	if c.GitHub.APIURL == "" {
		return fmt.Errorf("GITHUB_API_URL is required")
	}
	if c.GitHub.WebHost == "" {
		return fmt.Errorf("GITHUB_WEB_HOST is required")
	}
	if c.Navigation.SettleDelayMs < 0 {
		return fmt.Errorf("NAV_SETTLE_DELAY_MS cannot be negative")
	}

	switch c.Credential.Source {
	case CredentialSourceEnv:
	case CredentialSourceDatabase:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required when CREDENTIAL_SOURCE=database")
		}
		if c.Credential.EncryptionKey == "" {
			return fmt.Errorf("ENCRYPTION_KEY is required when CREDENTIAL_SOURCE=database")
		}
		if c.Credential.JWTSecret == "" {
			return fmt.Errorf("SETTINGS_JWT_SECRET is required when CREDENTIAL_SOURCE=database")
		}
	default:
		return fmt.Errorf("unknown CREDENTIAL_SOURCE %q", c.Credential.Source)
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// SettleDelay is the wait before a navigation-triggered run
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Navigation.SettleDelayMs) * time.Millisecond
}

// HTTPTimeout is the per-request timeout of the GitHub client
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.GitHub.TimeoutSeconds) * time.Second
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

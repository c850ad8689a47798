package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ClientConfig holds all configuration values for the backend client
type ClientConfig struct {
	BackendURL  string        // Base URL of the video-download backend
	HTTPTimeout time.Duration // Timeout for metadata requests
	MaxAttempts int           // Maximum network attempts per request
	RetryDelay  time.Duration // Fixed delay between retry attempts
	LogLevel    string        // Logging level (DEBUG, INFO, WARN, ERROR, FATAL)
}

// LoadConfig loads and validates the client configuration from environment variables
// Returns a ClientConfig struct or an error if validation fails
func LoadConfig() (*ClientConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Create and use environment validator
	validator := NewEnvValidator()

	// Validate required environment variables
	if err := validator.ValidateRequired(); err != nil {
		return nil, fmt.Errorf("environment validation failed: %w", err)
	}

	backendURL := validator.GetBackendURL()
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required but not set")
	}

	timeoutSeconds, err := validator.GetIntEnv("HTTP_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}

	maxAttempts, err := validator.GetIntEnv("MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_ATTEMPTS: %w", err)
	}

	retryDelayMs, err := validator.GetIntEnv("RETRY_DELAY_MS", 1000)
	if err != nil {
		return nil, fmt.Errorf("invalid RETRY_DELAY_MS: %w", err)
	}

	// Get log level with default
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO" // Default log level
	}

	config := &ClientConfig{
		BackendURL:  backendURL,
		HTTPTimeout: time.Duration(timeoutSeconds) * time.Second,
		MaxAttempts: maxAttempts,
		RetryDelay:  time.Duration(retryDelayMs) * time.Millisecond,
		LogLevel:    logLevel,
	}

	return config, nil
}

// Validate performs additional validation on the loaded configuration
func (c *ClientConfig) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL cannot be empty")
	}

	parsed, err := url.Parse(c.BackendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend URL must be an absolute URL, got: %s", c.BackendURL)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got: %v", c.HTTPTimeout)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got: %d", c.MaxAttempts)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative, got: %v", c.RetryDelay)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
		"FATAL": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s. Valid levels are: DEBUG, INFO, WARN, ERROR, FATAL", c.LogLevel)
	}

	return nil
}

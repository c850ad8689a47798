package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// EnvValidator handles validation of required environment variables
type EnvValidator struct{}

// NewEnvValidator creates a new environment validator instance
func NewEnvValidator() *EnvValidator {
	return &EnvValidator{}
}

// ValidateRequired validates that all required environment variables are present
// Returns an error if any required variables are missing
func (e *EnvValidator) ValidateRequired() error {
	requiredVars := []string{"BACKEND_URL"}

	var missingVars []string
	for _, varName := range requiredVars {
		if value := os.Getenv(varName); value == "" {
			missingVars = append(missingVars, varName)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v. Please set these variables in your .env file or environment", missingVars)
	}

	// Validate BACKEND_URL is an absolute URL
	if err := e.validateBackendURL(); err != nil {
		return fmt.Errorf("invalid BACKEND_URL: %w", err)
	}

	return nil
}

// GetBackendURL returns the backend base URL from environment variables
func (e *EnvValidator) GetBackendURL() string {
	return os.Getenv("BACKEND_URL")
}

// GetIntEnv returns the integer value of an environment variable, or the
// fallback if the variable is not set
// Returns an error if the value cannot be converted to an integer
func (e *EnvValidator) GetIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer, got: %s", key, value)
	}

	return parsed, nil
}

// validateBackendURL checks that BACKEND_URL parses as an absolute URL
func (e *EnvValidator) validateBackendURL() error {
	raw := os.Getenv("BACKEND_URL")
	if raw == "" {
		return fmt.Errorf("BACKEND_URL environment variable is not set")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("BACKEND_URL must be a valid URL, got: %s", raw)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("BACKEND_URL must include a scheme and host, got: %s", raw)
	}

	return nil
}

// Package config provides configuration structures and validation for the application.
// It handles environment-based configuration for all major components including
// server settings, API authentication and fixture generation parameters.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration with settings for all components.
// Each field represents a major subsystem's configuration (e.g., HTTP server, fixture
// seeding) and is validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Auth        AuthConfig
	Fixtures    FixturesConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// AuthConfig contains API authentication configuration
type AuthConfig struct {
	APIKeys []string // Allow-list checked against the x-api-key header
}

// FixturesConfig controls the synthetic data seeded at startup
type FixturesConfig struct {
	Seed                    int64   // PRNG seed; 0 picks a time-based seed
	TransactionsPerCustomer int     // History length generated for funded customers
	StartingBalance         float64 // Balance each funded history is replayed from
	ConfirmationCode        string  // Code the confirmation endpoint accepts
}

// WorkerPoolConfig contains worker pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of workers in the pool
}

// validate performs comprehensive validation of all configuration values,
// ensuring they meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Auth config
	if len(c.Auth.APIKeys) == 0 {
		validationErrors = append(validationErrors, "API_KEYS must list at least one key")
	}

	// Validate Fixtures config
	if c.Fixtures.TransactionsPerCustomer <= 0 {
		validationErrors = append(validationErrors, "FIXTURE_TRANSACTIONS_PER_CUSTOMER must be greater than 0")
	}
	if c.Fixtures.StartingBalance < 0 {
		validationErrors = append(validationErrors, "FIXTURE_STARTING_BALANCE must not be negative")
	}
	if c.Fixtures.ConfirmationCode == "" {
		validationErrors = append(validationErrors, "FIXTURE_CONFIRMATION_CODE is required")
	}

	// Validate WorkerPool config
	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}

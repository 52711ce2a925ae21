package mongodb

import "errors"

var (
	// ErrMissingURI is returned when no connection string is configured
	ErrMissingURI = errors.New("mongodb URI is required")

	// ErrMissingDatabase is returned when no database name is configured
	ErrMissingDatabase = errors.New("database name is required")
)

// Config holds configuration for the MongoDB sink.
type Config struct {
	URI      string
	Database string
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.URI == "" {
		return ErrMissingURI
	}
	if c.Database == "" {
		return ErrMissingDatabase
	}
	return nil
}

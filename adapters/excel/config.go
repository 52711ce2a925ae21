package excel

import (
	"time"

	labsync "github.com/bhklab/lab-website-data-refresh"
)

// Config holds configuration for the Excel source. The workbook is an
// offline .xlsx export of the spreadsheet; worksheet names are supplied per
// fetch.
type Config struct {
	FilePath string
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return ErrMissingFilePath
	}
	return nil
}

// DefaultClientConfig returns the recommended client configuration for an
// Excel source. Local files fail fast, so retries are tight.
func DefaultClientConfig() *labsync.Config {
	return &labsync.Config{
		MaxRetries:    3,
		RetryInterval: 100 * time.Millisecond,
	}
}

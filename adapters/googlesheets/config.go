package googlesheets

import (
	"errors"
	"time"

	labsync "github.com/bhklab/lab-website-data-refresh"
)

// ErrMissingSpreadsheetID is returned when no spreadsheet ID is configured.
var ErrMissingSpreadsheetID = errors.New("spreadsheet ID is required")

// Config holds configuration for the Google Sheets source. Worksheet names
// are supplied per fetch, not here, so one source serves every pass against
// the same spreadsheet.
type Config struct {
	SpreadsheetID string
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return ErrMissingSpreadsheetID
	}
	return nil
}

// DefaultClientConfig returns the recommended client configuration for a
// Google Sheets source. Quota errors on the Sheets API are transient, so
// retries are spaced well apart.
func DefaultClientConfig() *labsync.Config {
	return &labsync.Config{
		MaxRetries:    3,
		RetryInterval: 2 * time.Second,
	}
}

package excel

import "errors"

var (
	// ErrMissingFilePath is returned when file path is not specified
	ErrMissingFilePath = errors.New("file path is required")

	// ErrSheetNotFound is returned when the requested worksheet doesn't exist
	ErrSheetNotFound = errors.New("sheet not found")
)

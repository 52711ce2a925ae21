package labsync

import "errors"

var (
	// ErrUnknownSheetKind is returned when a row is mapped for a sheet kind
	// that has no registered schema. This is a configuration error, not bad
	// row data, and fails the pass.
	ErrUnknownSheetKind = errors.New("unknown sheet kind")

	// ErrUnknownCollectionKind is returned when a sync targets a collection
	// kind with no registered unique key.
	ErrUnknownCollectionKind = errors.New("unknown collection kind")
)

package services

import "errors"

// Define common service errors
var (
	// ErrNotFound: a valid id addressed no document (404-class).
	ErrNotFound = errors.New("resource not found")
	// ErrStoreUnavailable: any read/write against the document store failed
	// (500-class, never retried).
	ErrStoreUnavailable = errors.New("no database response")
	// ErrUnknown: a file-system failure during a cascading delete or image
	// replacement (500-class).
	ErrUnknown = errors.New("unknown error")
)

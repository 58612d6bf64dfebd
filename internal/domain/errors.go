package domain

import "errors"

// Sentinel errors - match with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable means no content store is configured or the store
	// rejected a write. Read paths never surface it (they fall back to the
	// default document); write paths always do, because silently dropping a
	// publish is the one unacceptable failure mode.
	ErrStoreUnavailable = errors.New("content store unavailable")
)
